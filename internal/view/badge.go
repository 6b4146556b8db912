// Package view holds the presentation bindings of the storefront cart:
// the badge counter, the drawer, the action dispatch table and the
// product-added toast. Badge and Drawer subscribe to ops.Store and hold no
// cart logic of their own.
package view

import (
	"context"
	"fmt"
	"sync"

	"github.com/blububb/cart/internal/model"
)

// Badge mirrors the cart's item count. It is hidden when the count is zero.
type Badge struct {
	mu    sync.RWMutex
	count int
}

// NewBadge returns a badge initialised from cart.
func NewBadge(cart *model.Cart) *Badge {
	b := &Badge{}
	if cart != nil {
		b.count = cart.ItemCount
	}
	return b
}

// CartChanged updates the counter.
func (b *Badge) CartChanged(_ context.Context, cart *model.Cart) {
	b.mu.Lock()
	b.count = cart.ItemCount
	b.mu.Unlock()
}

// Count returns the displayed item count.
func (b *Badge) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}

// Visible reports whether the badge is shown.
func (b *Badge) Visible() bool {
	return b.Count() > 0
}

// String renders the badge, or "" when hidden.
func (b *Badge) String() string {
	n := b.Count()
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("[cart %d]", n)
}
