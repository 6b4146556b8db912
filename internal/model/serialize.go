package model

import (
	"encoding/json"
	"fmt"
)

// MarshalCart encodes the full cart document.
// A nil Items slice is written as an empty array, never null.
func MarshalCart(c *Cart) ([]byte, error) {
	doc := *c
	if doc.Items == nil {
		doc.Items = []LineItem{}
	}
	data, err := json.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cart: %w", err)
	}
	return data, nil
}

// UnmarshalCart decodes a cart document.
// The stored aggregates are kept as-is; callers that need to trust them
// should call Normalize.
func UnmarshalCart(data []byte) (*Cart, error) {
	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse cart: %w", err)
	}
	if c.Items == nil {
		c.Items = []LineItem{}
	}
	return &c, nil
}

// MarshalCartIndent encodes the cart for hand editing.
func MarshalCartIndent(c *Cart) ([]byte, error) {
	doc := *c
	if doc.Items == nil {
		doc.Items = []LineItem{}
	}
	data, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode cart: %w", err)
	}
	return append(data, '\n'), nil
}
