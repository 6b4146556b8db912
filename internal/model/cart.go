package model

// AddProduct adds one unit of p to the cart.
// An existing line item with the same ID has its quantity incremented;
// otherwise a new line item is appended with quantity 1.
// Aggregates are recomputed before returning.
func (c *Cart) AddProduct(p Product) *LineItem {
	if item := c.Find(p.ID); item != nil {
		item.Quantity++
		item.Subtotal = item.Price * int64(item.Quantity)
		c.Recalculate()
		return item
	}

	c.Items = append(c.Items, LineItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: 1,
		Image:    p.Image,
		Subtotal: p.Price,
	})
	c.Recalculate()
	return &c.Items[len(c.Items)-1]
}

// RemoveItem drops the line item with the given ID.
// Returns false if no such item existed. Aggregates are recomputed either way.
func (c *Cart) RemoveItem(id string) bool {
	kept := c.Items[:0]
	removed := false
	for _, item := range c.Items {
		if item.ID == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	c.Items = kept
	c.Recalculate()
	return removed
}

// SetQuantity sets the quantity of the line item with the given ID.
// A quantity of zero or less removes the item.
// Returns false if no such item existed. Aggregates are recomputed either way.
func (c *Cart) SetQuantity(id string, quantity int) bool {
	if quantity <= 0 {
		return c.RemoveItem(id)
	}

	item := c.Find(id)
	if item != nil {
		item.Quantity = quantity
		item.Subtotal = item.Price * int64(quantity)
	}
	c.Recalculate()
	return item != nil
}

// Recalculate recomputes Total and ItemCount from Items.
func (c *Cart) Recalculate() {
	var total int64
	count := 0
	for _, item := range c.Items {
		total += item.Subtotal
		count += item.Quantity
	}
	c.Total = total
	c.ItemCount = count
}

// Normalize repairs a document that may have been edited by hand.
// Duplicate IDs are merged into the first occurrence, items with a
// non-positive quantity are dropped, and every subtotal and aggregate
// is recomputed.
func (c *Cart) Normalize() {
	if c.Items == nil {
		c.Items = []LineItem{}
	}

	index := make(map[string]int, len(c.Items))
	merged := make([]LineItem, 0, len(c.Items))
	for _, item := range c.Items {
		if i, ok := index[item.ID]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		index[item.ID] = len(merged)
		merged = append(merged, item)
	}

	kept := merged[:0]
	for _, item := range merged {
		if item.Quantity <= 0 {
			continue
		}
		item.Subtotal = item.Price * int64(item.Quantity)
		kept = append(kept, item)
	}
	c.Items = kept
	c.Recalculate()
}
