// Package catalog holds the bundled storefront product list. The storefront
// pages read from this in-memory catalog only; the admin console manages the
// products table separately.
package catalog

const (
	CategoryCashews = "cashews"
	CategoryFlours  = "flours"
)

type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Type          string  `json:"type"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price,omitempty"`
	Weight        string  `json:"weight"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
	Image         string  `json:"image"`
	InStock       bool    `json:"in_stock"`
	Featured      bool    `json:"featured"`
}

// Catalog is an ordered product list; query functions preserve its order.
type Catalog struct {
	products []*Product
	byID     map[string]*Product
}

func New(products []*Product) *Catalog {
	byID := make(map[string]*Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}
}

// Default returns the catalog shipped with the storefront.
func Default() *Catalog {
	return New(defaultProducts())
}

func (c *Catalog) All() []*Product {
	out := make([]*Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) ByID(id string) (*Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) ProductsByCategory(category string) []*Product {
	out := make([]*Product, 0, len(c.products))
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) FeaturedProducts() []*Product {
	out := make([]*Product, 0, 4)
	for _, p := range c.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// TypesForCategory lists the distinct product types of a category in first-seen
// order, for the storefront filter sidebar.
func (c *Catalog) TypesForCategory(category string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		if p.Category != category || seen[p.Type] {
			continue
		}
		seen[p.Type] = true
		out = append(out, p.Type)
	}
	return out
}

func defaultProducts() []*Product {
	return []*Product{
		{
			ID:       "cashew-raw-250",
			Name:     "Raw Cashews",
			Category: CategoryCashews,
			Type:     "Raw",
			Price:    12.99,
			Weight:   "250g",
			Rating:   4.8,
			Reviews:  124,
			Image:    "/images/product-cashews-raw.jpg",
			InStock:  true,
			Featured: true,
		},
		{
			ID:            "cashew-roasted-250",
			Name:          "Roasted & Salted Cashews",
			Category:      CategoryCashews,
			Type:          "Roasted",
			Price:         13.99,
			OriginalPrice: 16.99,
			Weight:        "250g",
			Rating:        4.9,
			Reviews:       208,
			Image:         "/images/product-cashews-roasted.jpg",
			InStock:       true,
			Featured:      true,
		},
		{
			ID:       "cashew-raw-500",
			Name:     "Raw Cashews Family Pack",
			Category: CategoryCashews,
			Type:     "Raw",
			Price:    22.99,
			Weight:   "500g",
			Rating:   4.7,
			Reviews:  86,
			Image:    "/images/product-cashews-raw.jpg",
			InStock:  true,
		},
		{
			ID:       "cashew-honey-250",
			Name:     "Honey Glazed Cashews",
			Category: CategoryCashews,
			Type:     "Honey Glazed",
			Price:    14.99,
			Weight:   "250g",
			Rating:   4.6,
			Reviews:  59,
			Image:    "/images/product-cashews-honey.jpg",
			InStock:  true,
		},
		{
			ID:            "cashew-spicy-250",
			Name:          "Chili Spiced Cashews",
			Category:      CategoryCashews,
			Type:          "Spiced",
			Price:         14.49,
			OriginalPrice: 15.99,
			Weight:        "250g",
			Rating:        4.5,
			Reviews:       43,
			Image:         "/images/product-cashews-spicy.jpg",
			InStock:       true,
		},
		{
			ID:       "flour-almond-500",
			Name:     "Almond Flour",
			Category: CategoryFlours,
			Type:     "Almond",
			Price:    11.49,
			Weight:   "500g",
			Rating:   4.9,
			Reviews:  176,
			Image:    "/images/product-flour-almond.jpg",
			InStock:  true,
			Featured: true,
		},
		{
			ID:       "flour-coconut-500",
			Name:     "Coconut Flour",
			Category: CategoryFlours,
			Type:     "Coconut",
			Price:    8.99,
			Weight:   "500g",
			Rating:   4.7,
			Reviews:  132,
			Image:    "/images/product-flour-coconut.jpg",
			InStock:  true,
			Featured: true,
		},
		{
			ID:            "flour-cashew-500",
			Name:          "Cashew Flour",
			Category:      CategoryFlours,
			Type:          "Cashew",
			Price:         13.99,
			OriginalPrice: 15.49,
			Weight:        "500g",
			Rating:        4.6,
			Reviews:       64,
			Image:         "/images/product-flour-cashew.jpg",
			InStock:       true,
		},
		{
			ID:       "flour-almond-1000",
			Name:     "Almond Flour Baker's Pack",
			Category: CategoryFlours,
			Type:     "Almond",
			Price:    19.99,
			Weight:   "1kg",
			Rating:   4.8,
			Reviews:  91,
			Image:    "/images/product-flour-almond.jpg",
			InStock:  true,
		},
	}
}
