// Package model defines the cart document persisted in browser-style local
// storage and the pure operations that keep its aggregates consistent.
package model

// Storage keys used by the storefront.
const (
	// CartKey holds the JSON-encoded Cart document.
	CartKey = "blububb_cart"
	// PopupSeenKey is set to "true" once the promotional popup is dismissed.
	PopupSeenKey = "blububb_popup_seen"
)

// Product describes an item offered on a product-listing page.
// Price is in the smallest currency unit.
type Product struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Image string `json:"image"`
}

// LineItem is one product entry in the cart.
// Subtotal is stored for rendering and always equals Price * Quantity.
type LineItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image"`
	Subtotal int64  `json:"subtotal"`
}

// Cart is the single persisted document for one visitor.
// Items keep the order in which products were first added.
type Cart struct {
	Items     []LineItem `json:"items"`
	Total     int64      `json:"total"`
	ItemCount int        `json:"itemCount"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{Items: []LineItem{}}
}

// IsEmpty reports whether the cart holds no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Find returns the line item with the given product ID, or nil.
func (c *Cart) Find(id string) *LineItem {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the cart.
func (c *Cart) Clone() *Cart {
	out := &Cart{
		Items:     make([]LineItem, len(c.Items)),
		Total:     c.Total,
		ItemCount: c.ItemCount,
	}
	copy(out.Items, c.Items)
	return out
}
