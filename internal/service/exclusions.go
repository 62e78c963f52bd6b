package service

import (
	"strings"

	"github.com/guttosm/carton-service/internal/domain/model"
)

// ExclusionFilter strips non-packable order lines before selection.
// Insurance, surcharges and other synthetic lines never occupy carton
// volume and must not alter the combo signature.
type ExclusionFilter struct {
	skuPrefixes []string
	nameMarkers []string
}

// NewExclusionFilter builds a filter from configured SKU prefixes and
// case-insensitive product name markers.
func NewExclusionFilter(skuPrefixes, nameMarkers []string) *ExclusionFilter {
	markers := make([]string, 0, len(nameMarkers))
	for _, m := range nameMarkers {
		m = strings.ToLower(strings.TrimSpace(m))
		if m != "" {
			markers = append(markers, m)
		}
	}
	prefixes := make([]string, 0, len(skuPrefixes))
	for _, p := range skuPrefixes {
		p = strings.TrimSpace(p)
		if p != "" {
			prefixes = append(prefixes, p)
		}
	}
	return &ExclusionFilter{
		skuPrefixes: prefixes,
		nameMarkers: markers,
	}
}

// Filter returns the packable items, preserving input order.
func (f *ExclusionFilter) Filter(items []model.Item) []model.Item {
	if len(f.skuPrefixes) == 0 && len(f.nameMarkers) == 0 {
		return items
	}

	packable := make([]model.Item, 0, len(items))
	for _, item := range items {
		if f.Excluded(item) {
			continue
		}
		packable = append(packable, item)
	}
	return packable
}

// Excluded reports whether a single line is non-packable.
func (f *ExclusionFilter) Excluded(item model.Item) bool {
	for _, prefix := range f.skuPrefixes {
		if strings.HasPrefix(item.SKU, prefix) {
			return true
		}
	}
	if item.Name != "" {
		name := strings.ToLower(item.Name)
		for _, marker := range f.nameMarkers {
			if strings.Contains(name, marker) {
				return true
			}
		}
	}
	return false
}
