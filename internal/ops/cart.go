package ops

import (
	"context"

	"github.com/blububb/cart/internal/model"
	"go.uber.org/zap"
)

// Add puts one unit of product into the cart and returns the saved cart.
// Subscribers run first, then the OnAdded hooks.
func (s *Store) Add(ctx context.Context, product model.Product) (*model.Cart, error) {
	cart, err := s.mutate(ctx, func(c *model.Cart) bool {
		c.AddProduct(product)
		return true
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("product added", zap.String("product_id", product.ID), zap.Int("item_count", cart.ItemCount))

	s.subMu.RLock()
	hooks := append([]AddedFunc(nil), s.added...)
	s.subMu.RUnlock()
	for _, fn := range hooks {
		fn(ctx, product)
	}
	return cart, nil
}

// Remove drops the line item for productID. Removing an absent item still
// recalculates and saves.
func (s *Store) Remove(ctx context.Context, productID string) (*model.Cart, error) {
	return s.mutate(ctx, func(c *model.Cart) bool {
		if c.RemoveItem(productID) {
			s.logger.Info("product removed", zap.String("product_id", productID))
		}
		return true
	})
}

// UpdateQuantity sets the quantity for productID. A quantity of zero or less
// behaves exactly like Remove. An absent item is left alone, but the cart is
// still recalculated and saved.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) (*model.Cart, error) {
	if quantity <= 0 {
		return s.Remove(ctx, productID)
	}
	return s.mutate(ctx, func(c *model.Cart) bool {
		if c.SetQuantity(productID, quantity) {
			s.logger.Info("quantity updated", zap.String("product_id", productID), zap.Int("quantity", quantity))
		}
		return true
	})
}

// Increment adds one to the quantity of productID.
// If the item is not in the cart nothing is saved.
func (s *Store) Increment(ctx context.Context, productID string) (*model.Cart, error) {
	return s.step(ctx, productID, 1)
}

// Decrement subtracts one from the quantity of productID, removing the item
// when it reaches zero. If the item is not in the cart nothing is saved.
func (s *Store) Decrement(ctx context.Context, productID string) (*model.Cart, error) {
	return s.step(ctx, productID, -1)
}

func (s *Store) step(ctx context.Context, productID string, delta int) (*model.Cart, error) {
	return s.mutate(ctx, func(c *model.Cart) bool {
		item := c.Find(productID)
		if item == nil {
			return false
		}
		c.SetQuantity(productID, item.Quantity+delta)
		return true
	})
}

// Clear replaces the document with an empty cart.
func (s *Store) Clear(ctx context.Context) (*model.Cart, error) {
	empty := model.NewCart()
	if err := s.Save(ctx, empty); err != nil {
		return nil, err
	}
	s.logger.Info("cart cleared")
	return empty, nil
}

// Replace normalizes cart and saves it in place of the current document.
// Used after the document has been edited by hand.
func (s *Store) Replace(ctx context.Context, cart *model.Cart) (*model.Cart, error) {
	cart.Normalize()
	if err := s.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
