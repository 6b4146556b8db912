package view

import (
	"context"
	"sync"

	"github.com/blububb/cart/internal/model"
)

// Line is one rendered line item.
type Line struct {
	ID        string
	Name      string
	Image     string
	UnitPrice string
	Quantity  int
	Subtotal  string
}

// DrawerView is everything the drawer displays for one cart.
type DrawerView struct {
	Empty        bool
	ShowCheckout bool
	Lines        []Line
	Total        string
}

// BuildDrawerView renders cart into a DrawerView. Lines keep cart order.
func BuildDrawerView(cart *model.Cart, f *model.PriceFormatter) DrawerView {
	format := model.FormatPrice
	if f != nil {
		format = f.Format
	}

	if cart == nil || cart.IsEmpty() {
		return DrawerView{Empty: true}
	}

	v := DrawerView{
		ShowCheckout: true,
		Lines:        make([]Line, 0, len(cart.Items)),
		Total:        format(cart.Total),
	}
	for _, item := range cart.Items {
		v.Lines = append(v.Lines, Line{
			ID:        item.ID,
			Name:      item.Name,
			Image:     item.Image,
			UnitPrice: format(item.Price),
			Quantity:  item.Quantity,
			Subtotal:  format(item.Subtotal),
		})
	}
	return v
}

// Drawer is the slide-out cart panel. Its contents are rebuilt from scratch
// on every cart change. Open state drives the overlay and the page scroll
// lock together.
type Drawer struct {
	mu        sync.RWMutex
	formatter *model.PriceFormatter
	view      DrawerView
	open      bool
	renders   int
}

// NewDrawer returns a closed drawer showing cart.
func NewDrawer(cart *model.Cart, f *model.PriceFormatter) *Drawer {
	return &Drawer{
		formatter: f,
		view:      BuildDrawerView(cart, f),
	}
}

// CartChanged re-renders the drawer.
func (d *Drawer) CartChanged(_ context.Context, cart *model.Cart) {
	v := BuildDrawerView(cart, d.formatter)
	d.mu.Lock()
	d.view = v
	d.renders++
	d.mu.Unlock()
}

// View returns the current contents.
func (d *Drawer) View() DrawerView {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.view
}

// Renders returns how many times the drawer has been re-rendered.
func (d *Drawer) Renders() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.renders
}

// Open shows the drawer.
func (d *Drawer) Open() { d.setOpen(true) }

// Close hides the drawer.
func (d *Drawer) Close() { d.setOpen(false) }

// ClickOverlay closes the drawer, as clicking outside it does.
func (d *Drawer) ClickOverlay() { d.setOpen(false) }

// Toggle flips the drawer between open and closed.
func (d *Drawer) Toggle() {
	d.mu.Lock()
	d.open = !d.open
	d.mu.Unlock()
}

func (d *Drawer) setOpen(open bool) {
	d.mu.Lock()
	d.open = open
	d.mu.Unlock()
}

// IsOpen reports whether the drawer is shown.
func (d *Drawer) IsOpen() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.open
}

// OverlayActive reports whether the backdrop overlay is shown.
func (d *Drawer) OverlayActive() bool { return d.IsOpen() }

// ScrollLocked reports whether page scrolling is disabled.
func (d *Drawer) ScrollLocked() bool { return d.IsOpen() }
