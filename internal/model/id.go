package model

import (
	"fmt"
	"strings"
)

// NormalizeProductID trims surrounding whitespace from a product ID.
// IDs are otherwise opaque and compared exactly.
func NormalizeProductID(s string) string {
	return strings.TrimSpace(s)
}

// ValidateProduct checks the fields a caller must supply before adding a
// product. The cart itself accepts any values; this is for input surfaces.
func ValidateProduct(p Product) error {
	if NormalizeProductID(p.ID) == "" {
		return fmt.Errorf("product id must not be empty")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("product name must not be empty")
	}
	if p.Price < 0 {
		return fmt.Errorf("invalid price %d: must not be negative", p.Price)
	}
	return nil
}
