package order

import (
	"context"
	"errors"
)

// OrderItem is one line of an order. ProductID is not checked against the catalog.
type OrderItem struct {
	ProductID uint32 `json:"product_id"`
	Quantity  uint32 `json:"quantity"`
}

// Order represents a customer order as submitted at the counter.
// Total is supplied by the caller and never recomputed.
type Order struct {
	Items []OrderItem `json:"items"`
	Total float64     `json:"total"`
}

// Clone returns a deep copy of o. Items is never nil in the copy.
func (o Order) Clone() Order {
	items := make([]OrderItem, len(o.Items))
	copy(items, o.Items)
	return Order{Items: items, Total: o.Total}
}

// Repository defines behavior for storing orders. Implementations are append-only.
type Repository interface {
	Append(ctx context.Context, o Order) (Order, error)
	List(ctx context.Context) ([]Order, error)
	Len(ctx context.Context) (int, error)
}

// Publisher announces accepted orders to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, o Order) error
}

// ErrMalformed indicates a request body that does not describe an order.
var ErrMalformed = errors.New("malformed order")
