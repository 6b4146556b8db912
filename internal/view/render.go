package view

import (
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/blububb/cart/internal/cli"
)

// EmptyMessage is shown in place of the item list when the cart is empty.
const EmptyMessage = "Keranjang belanja kosong"

// RenderText writes the drawer as a table followed by the total.
func RenderText(w io.Writer, v DrawerView) {
	if v.Empty {
		fmt.Fprintln(w, cli.Gray(EmptyMessage))
		return
	}

	table := cli.NewTable()
	table.SetMaxWidth(1, cli.DefaultMaxTitleWidth)
	table.SetAlign(2, cli.AlignRight)
	table.SetAlign(4, cli.AlignRight)
	for _, line := range v.Lines {
		table.AddRow(
			line.ID,
			line.Name,
			line.UnitPrice,
			"x"+strconv.Itoa(line.Quantity),
			line.Subtotal,
		)
	}
	table.Render(w)
	fmt.Fprintf(w, "Total: %s\n", cli.Green(v.Total))
}

var drawerTemplate = template.Must(template.New("drawer").Parse(`<div id="cartContent">
{{- range .Lines}}
<div class="cart-item" data-id="{{.ID}}">
  <img src="{{.Image}}" alt="{{.Name}}" class="cart-item-img">
  <div class="cart-item-info">
    <h4>{{.Name}}</h4>
    <p class="cart-item-price">{{.UnitPrice}}</p>
    <div class="cart-item-qty">
      <button class="qty-btn minus" data-id="{{.ID}}">−</button>
      <span class="qty-value">{{.Quantity}}</span>
      <button class="qty-btn plus" data-id="{{.ID}}">+</button>
    </div>
  </div>
  <button class="cart-item-remove" data-id="{{.ID}}"><i class="fas fa-trash-alt"></i></button>
</div>
{{- end}}
</div>
<div id="cartEmpty" style="display: {{if .Empty}}flex{{else}}none{{end}}">{{.EmptyMessage}}</div>
<div id="cartFooter" style="display: {{if .ShowCheckout}}block{{else}}none{{end}}">
  <span id="cartTotal">{{.Total}}</span>
</div>
`))

// RenderHTML writes the drawer markup used by the storefront page.
// All cart-provided values are escaped.
func RenderHTML(w io.Writer, v DrawerView) error {
	data := struct {
		DrawerView
		EmptyMessage string
	}{v, EmptyMessage}
	if err := drawerTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render drawer: %w", err)
	}
	return nil
}

// BadgeHTML renders the badge element.
func BadgeHTML(b *Badge) template.HTML {
	display := "none"
	if b.Visible() {
		display = "flex"
	}
	return template.HTML(fmt.Sprintf(`<span id="cartBadge" style="display: %s">%d</span>`, display, b.Count()))
}
