// Package memory implements an in-memory order repository.
package memory

import (
	"context"
	"sync"

	"fastfoodpos/pkg/order"
)

// Repository provides an in-memory, append-only implementation of order.Repository.
type Repository struct {
	mu     sync.Mutex
	orders []order.Order
}

// New creates an empty in-memory repository.
func New() *Repository {
	return &Repository{}
}

// Append stores a copy of o at the tail and returns a copy of what was stored.
func (r *Repository) Append(ctx context.Context, o order.Order) (order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, o.Clone())
	return r.orders[len(r.orders)-1].Clone(), nil
}

// List returns all orders in arrival order.
func (r *Repository) List(ctx context.Context) ([]order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o.Clone())
	}
	return out, nil
}

// Len reports how many orders have been accepted.
func (r *Repository) Len(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders), nil
}
