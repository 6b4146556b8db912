package view

import (
	"bytes"
	"context"
	"testing"

	"github.com/blububb/cart/internal/cli"
	"github.com/blububb/cart/internal/model"
	"github.com/blububb/cart/internal/ops"
	"github.com/blububb/cart/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tee = model.Product{ID: "A", Name: "Tee", Price: 50000, Image: "/a.png"}
	mug = model.Product{ID: "B", Name: "Mug", Price: 30000, Image: "/b.png"}
)

// setupBoundStore returns a store with a badge and drawer subscribed.
func setupBoundStore(t *testing.T) (*ops.Store, *Badge, *Drawer) {
	t.Helper()
	s := ops.NewStore(storage.NewMemoryKV())
	ctx := context.Background()
	badge := NewBadge(s.Load(ctx))
	drawer := NewDrawer(s.Load(ctx), nil)
	s.Subscribe(badge)
	s.Subscribe(drawer)
	return s, badge, drawer
}

func TestBadge(t *testing.T) {
	ctx := context.Background()
	s, badge, _ := setupBoundStore(t)

	assert.Equal(t, 0, badge.Count())
	assert.False(t, badge.Visible())
	assert.Equal(t, "", badge.String())

	_, err := s.Add(ctx, tee)
	require.NoError(t, err)
	_, err = s.Add(ctx, tee)
	require.NoError(t, err)
	assert.Equal(t, 2, badge.Count())
	assert.True(t, badge.Visible())
	assert.Equal(t, "[cart 2]", badge.String())

	_, err = s.Clear(ctx)
	require.NoError(t, err)
	assert.False(t, badge.Visible())
}

func TestBuildDrawerView(t *testing.T) {
	t.Run("empty cart shows placeholder and hides checkout", func(t *testing.T) {
		v := BuildDrawerView(model.NewCart(), nil)
		assert.True(t, v.Empty)
		assert.False(t, v.ShowCheckout)
		assert.Empty(t, v.Lines)
	})

	t.Run("items render in cart order with formatted prices", func(t *testing.T) {
		c := model.NewCart()
		c.AddProduct(mug)
		c.AddProduct(tee)
		c.AddProduct(tee)

		v := BuildDrawerView(c, nil)
		assert.False(t, v.Empty)
		assert.True(t, v.ShowCheckout)
		assert.Equal(t, "Rp 130.000", v.Total)
		require.Len(t, v.Lines, 2)
		assert.Equal(t, Line{ID: "B", Name: "Mug", Image: "/b.png", UnitPrice: "Rp 30.000", Quantity: 1, Subtotal: "Rp 30.000"}, v.Lines[0])
		assert.Equal(t, Line{ID: "A", Name: "Tee", Image: "/a.png", UnitPrice: "Rp 50.000", Quantity: 2, Subtotal: "Rp 100.000"}, v.Lines[1])
	})

	t.Run("custom formatter", func(t *testing.T) {
		f, err := model.NewPriceFormatter("en-US", "$")
		require.NoError(t, err)
		c := model.NewCart()
		c.AddProduct(tee)

		v := BuildDrawerView(c, f)
		assert.Equal(t, "$50,000", v.Total)
	})
}

func TestDrawerRerendersOnEverySave(t *testing.T) {
	ctx := context.Background()
	s, _, drawer := setupBoundStore(t)

	assert.True(t, drawer.View().Empty)

	_, _ = s.Add(ctx, tee)
	_, _ = s.Add(ctx, mug)
	_, _ = s.Remove(ctx, "missing")
	assert.Equal(t, 3, drawer.Renders())
	assert.Len(t, drawer.View().Lines, 2)

	_, _ = s.Clear(ctx)
	assert.True(t, drawer.View().Empty)
}

func TestDrawerOpenState(t *testing.T) {
	d := NewDrawer(nil, nil)
	assert.False(t, d.IsOpen())

	d.Open()
	assert.True(t, d.IsOpen())
	assert.True(t, d.OverlayActive())
	assert.True(t, d.ScrollLocked())

	d.ClickOverlay()
	assert.False(t, d.IsOpen())
	assert.False(t, d.ScrollLocked())

	d.Toggle()
	assert.True(t, d.IsOpen())
	d.Close()
	assert.False(t, d.OverlayActive())
}

func TestRenderText(t *testing.T) {
	cli.SetColorEnabled(false)
	defer cli.SetColorEnabled(true)

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		RenderText(&buf, BuildDrawerView(model.NewCart(), nil))
		assert.Equal(t, EmptyMessage+"\n", buf.String())
	})

	t.Run("lines and total", func(t *testing.T) {
		c := model.NewCart()
		c.AddProduct(tee)
		c.AddProduct(mug)
		c.SetQuantity("B", 3)

		var buf bytes.Buffer
		RenderText(&buf, BuildDrawerView(c, nil))
		expected := "A  Tee  Rp 50.000  x1  Rp 50.000\n" +
			"B  Mug  Rp 30.000  x3  Rp 90.000\n" +
			"Total: Rp 140.000\n"
		assert.Equal(t, expected, buf.String())
	})
}

func TestRenderHTML(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderHTML(&buf, BuildDrawerView(model.NewCart(), nil)))
		out := buf.String()
		assert.Contains(t, out, `<div id="cartEmpty" style="display: flex">`)
		assert.Contains(t, out, `<div id="cartFooter" style="display: none">`)
		assert.NotContains(t, out, "cart-item")
	})

	t.Run("items carry their ids on every control", func(t *testing.T) {
		c := model.NewCart()
		c.AddProduct(tee)

		var buf bytes.Buffer
		require.NoError(t, RenderHTML(&buf, BuildDrawerView(c, nil)))
		out := buf.String()
		assert.Contains(t, out, `<div class="cart-item" data-id="A">`)
		assert.Contains(t, out, `<button class="qty-btn minus" data-id="A">`)
		assert.Contains(t, out, `<button class="qty-btn plus" data-id="A">`)
		assert.Contains(t, out, `<button class="cart-item-remove" data-id="A">`)
		assert.Contains(t, out, `<span id="cartTotal">Rp 50.000</span>`)
		assert.Contains(t, out, `<div id="cartFooter" style="display: block">`)
	})

	t.Run("names are escaped", func(t *testing.T) {
		c := model.NewCart()
		c.AddProduct(model.Product{ID: "X", Name: "<script>alert(1)</script>", Price: 1})

		var buf bytes.Buffer
		require.NoError(t, RenderHTML(&buf, BuildDrawerView(c, nil)))
		assert.NotContains(t, buf.String(), "<script>")
		assert.Contains(t, buf.String(), "&lt;script&gt;")
	})
}

func TestBadgeHTML(t *testing.T) {
	b := NewBadge(model.NewCart())
	assert.Equal(t, `<span id="cartBadge" style="display: none">0</span>`, string(BadgeHTML(b)))

	c := model.NewCart()
	c.AddProduct(tee)
	b.CartChanged(context.Background(), c)
	assert.Equal(t, `<span id="cartBadge" style="display: flex">1</span>`, string(BadgeHTML(b)))
}
