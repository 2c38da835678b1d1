package catalog

import "sort"

// Sort keys accepted by the storefront listing endpoints.
const (
	SortPopular   = "popular"
	SortRating    = "rating"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// FilterByTypes keeps products whose type is in the selection. An empty
// selection means no filter.
func FilterByTypes(products []*Product, types []string) []*Product {
	if len(types) == 0 {
		return products
	}
	selected := make(map[string]bool, len(types))
	for _, t := range types {
		selected[t] = true
	}
	out := make([]*Product, 0, len(products))
	for _, p := range products {
		if selected[p.Type] {
			out = append(out, p)
		}
	}
	return out
}

// SortProducts returns a sorted copy. The sort is stable so ties keep catalog
// order. Unknown keys fall back to most-popular, like the storefront default.
func SortProducts(products []*Product, key string) []*Product {
	out := make([]*Product, len(products))
	copy(out, products)

	var less func(a, b *Product) bool
	switch key {
	case SortPriceLow:
		less = func(a, b *Product) bool { return a.Price < b.Price }
	case SortPriceHigh:
		less = func(a, b *Product) bool { return a.Price > b.Price }
	case SortRating:
		less = func(a, b *Product) bool { return a.Rating > b.Rating }
	default:
		less = func(a, b *Product) bool { return a.Reviews > b.Reviews }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
