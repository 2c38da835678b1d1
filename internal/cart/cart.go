// Package cart holds the in-memory shopping carts for active storefront
// sessions. Carts never touch storage: a cart lives exactly as long as its
// session entry and is emptied only item by item.
package cart

import (
	"sync"

	"github.com/naturespantry/shop/internal/catalog"
)

type Item struct {
	Product  *catalog.Product `json:"product"`
	Quantity int              `json:"quantity"`
}

// Cart is an ordered item collection keyed by product ID. A product appears at
// most once; quantities are always >= 1.
type Cart struct {
	mu    sync.Mutex
	items []*Item
}

func New() *Cart {
	return &Cart{}
}

func (c *Cart) find(productID string) (int, *Item) {
	for i, it := range c.items {
		if it.Product.ID == productID {
			return i, it
		}
	}
	return -1, nil
}

// AddItem appends the product or, if already present, increments its quantity.
// Quantities below 1 are treated as 1. Stock is intentionally not checked.
func (c *Cart) AddItem(p *catalog.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, it := c.find(p.ID); it != nil {
		it.Quantity += quantity
		return
	}
	c.items = append(c.items, &Item{Product: p, Quantity: quantity})
}

// UpdateQuantity sets the quantity outright. Anything below 1 removes the
// entry entirely.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, it := c.find(productID)
	if it == nil {
		return
	}
	if quantity < 1 {
		c.items = append(c.items[:i], c.items[i+1:]...)
		return
	}
	it.Quantity = quantity
}

// RemoveItem deletes the entry; removing an absent product is a no-op.
func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, it := c.find(productID)
	if it == nil {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

func (c *Cart) Items() []*Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, it := range c.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice recomputes the sum on every read from the live product price, so
// a catalog price change shows up without any cart mutation.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0.0
	for _, it := range c.items {
		total += float64(it.Quantity) * it.Product.Price
	}
	return total
}

// Store owns the carts of all active sessions. It is injected into handlers
// rather than held as a package-level singleton so tests can build isolated
// instances.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Get returns the session's cart, creating an empty one on first touch.
func (s *Store) Get(sessionID string) *Cart {
	s.mu.RLock()
	c, ok := s.carts[sessionID]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[sessionID]; ok {
		return c
	}
	c = New()
	s.carts[sessionID] = c
	return c
}
