// Package dispatch decouples order intake from downstream publishing. Orders
// are queued in a bounded buffer and handed to the wrapped publisher by a
// single background goroutine, so a slow or unreachable feed never delays a
// response.
package dispatch

import (
	"context"
	"errors"
	"sync"
	"time"

	"fastfoodpos/pkg/logger"
	"fastfoodpos/pkg/order"
)

var (
	// ErrQueueFull is returned by Publish when the buffer has no room.
	ErrQueueFull = errors.New("order feed queue full")
	// ErrClosed is returned by Publish after Close.
	ErrClosed = errors.New("order feed closed")
)

// Dispatcher implements order.Publisher without blocking the caller.
type Dispatcher struct {
	next    order.Publisher
	log     *logger.Logger
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan order.Order
	done   chan struct{}
}

// New creates a Dispatcher holding at most size pending orders. Each delivery
// to next is bounded by timeout.
func New(next order.Publisher, log *logger.Logger, size int, timeout time.Duration) *Dispatcher {
	if size < 1 {
		size = 1
	}
	return &Dispatcher{
		next:    next,
		log:     log,
		timeout: timeout,
		queue:   make(chan order.Order, size),
		done:    make(chan struct{}),
	}
}

// Publish enqueues a copy of o and returns immediately.
func (d *Dispatcher) Publish(ctx context.Context, o order.Order) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrClosed
	}
	select {
	case d.queue <- o.Clone():
		return nil
	default:
		return ErrQueueFull
	}
}

// Run delivers queued orders until Close is called and the queue is drained.
// It must be called exactly once.
func (d *Dispatcher) Run() {
	defer close(d.done)
	for o := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		if err := d.next.Publish(ctx, o); err != nil {
			d.log.Warn(ctx, "deliver order", "error", err)
		}
		cancel()
	}
}

// Close stops accepting orders and waits for Run to drain the queue or for
// ctx to expire.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
