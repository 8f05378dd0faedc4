// Package catalog holds the fixed list of products offered at the counter.
package catalog

import "sync"

// Product is a single sellable menu entry.
type Product struct {
	ID    uint32  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Store provides safe concurrent access to a read-only product list.
type Store struct {
	mu       sync.RWMutex
	products []Product
}

// NewStore returns a Store holding a private copy of products.
func NewStore(products []Product) *Store {
	return &Store{products: clone(products)}
}

// NewSeededStore returns a Store holding the default menu.
func NewSeededStore() *Store {
	return NewStore(Seed())
}

// Seed returns the menu the service starts with.
func Seed() []Product {
	return []Product{
		{ID: 1, Name: "Classic Burger", Price: 15.50},
		{ID: 2, Name: "Cheese Burger", Price: 17.50},
		{ID: 3, Name: "Fries", Price: 6.00},
		{ID: 4, Name: "Soda", Price: 4.50},
	}
}

// List returns a snapshot of the catalog. The result is never nil.
func (s *Store) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.products)
}

func clone(in []Product) []Product {
	out := make([]Product, len(in))
	copy(out, in)
	return out
}
