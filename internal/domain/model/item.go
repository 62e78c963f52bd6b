package model

import "sort"

// Item is a single order line as seen by the selection engine.
//
// ProductID identifies the product for combo fingerprinting; SKU is the raw
// stock-keeping unit used to resolve the product's physical size. When
// ProductID is empty the SKU doubles as the product identity.
type Item struct {
	// SKU is the raw stock-keeping unit of the line
	SKU string `json:"sku" example:"MUG-11OZ-WHT"`
	// ProductID identifies the product; defaults to SKU when empty
	ProductID string `json:"product_id,omitempty"`
	// Quantity is the number of units ordered
	Quantity int `json:"quantity" example:"2"`
	// Name is the display name of the line, used only for exclusion heuristics
	Name string `json:"name,omitempty"`
}

// Key returns the product identity used for combo fingerprinting.
func (i Item) Key() string {
	if i.ProductID != "" {
		return i.ProductID
	}
	return i.SKU
}

// MergeItems collapses duplicate entries for the same product by summing
// quantities, drops entries whose merged quantity is not positive, and
// returns the result sorted by product identity ascending.
//
// The input slice is never modified.
func MergeItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}

	byProduct := make(map[string]Item, len(items))
	for _, it := range items {
		key := it.Key()
		if existing, ok := byProduct[key]; ok {
			existing.Quantity += it.Quantity
			byProduct[key] = existing
			continue
		}
		byProduct[key] = it
	}

	merged := make([]Item, 0, len(byProduct))
	for _, it := range byProduct {
		if it.Quantity <= 0 {
			continue
		}
		merged = append(merged, it)
	}

	sort.Slice(merged, func(a, b int) bool {
		return merged[a].Key() < merged[b].Key()
	})

	return merged
}
