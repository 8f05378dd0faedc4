package dispatch

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastfoodpos/pkg/logger"
	"fastfoodpos/pkg/order"
)

type blockingPublisher struct {
	release chan struct{}

	mu     sync.Mutex
	orders []order.Order
	err    error
}

func (b *blockingPublisher) Publish(ctx context.Context, o order.Order) error {
	if b.release != nil {
		<-b.release
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.orders = append(b.orders, o)
	return b.err
}

func (b *blockingPublisher) published() []order.Order {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]order.Order(nil), b.orders...)
}

func discard() *logger.Logger {
	return logger.New(io.Discard, logger.LevelInfo, "test", nil)
}

func TestDeliversInOrder(t *testing.T) {
	pub := &blockingPublisher{}
	d := New(pub, discard(), 8, time.Second)
	go d.Run()

	for i := 1; i <= 3; i++ {
		require.NoError(t, d.Publish(context.Background(), order.Order{Total: float64(i)}))
	}
	require.NoError(t, d.Close(context.Background()))

	got := pub.published()
	require.Len(t, got, 3)
	for i, o := range got {
		assert.Equal(t, float64(i+1), o.Total)
	}
}

func TestPublishDoesNotWaitForDelivery(t *testing.T) {
	pub := &blockingPublisher{release: make(chan struct{})}
	d := New(pub, discard(), 1, time.Second)
	go d.Run()

	start := time.Now()
	require.NoError(t, d.Publish(context.Background(), order.Order{Total: 1}))
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	close(pub.release)
	require.NoError(t, d.Close(context.Background()))
	assert.Len(t, pub.published(), 1)
}

func TestPublishDropsWhenFull(t *testing.T) {
	pub := &blockingPublisher{release: make(chan struct{})}
	d := New(pub, discard(), 1, time.Second)

	require.NoError(t, d.Publish(context.Background(), order.Order{Total: 1}))
	assert.ErrorIs(t, d.Publish(context.Background(), order.Order{Total: 2}), ErrQueueFull)

	go d.Run()
	close(pub.release)
	require.NoError(t, d.Close(context.Background()))

	got := pub.published()
	require.Len(t, got, 1)
	assert.Equal(t, 1.0, got[0].Total)
}

func TestPublishAfterClose(t *testing.T) {
	d := New(&blockingPublisher{}, discard(), 1, time.Second)
	go d.Run()
	require.NoError(t, d.Close(context.Background()))
	require.NoError(t, d.Close(context.Background()))

	assert.ErrorIs(t, d.Publish(context.Background(), order.Order{}), ErrClosed)
}

func TestCloseHonoursDeadline(t *testing.T) {
	pub := &blockingPublisher{release: make(chan struct{})}
	defer close(pub.release)
	d := New(pub, discard(), 1, time.Second)
	go d.Run()
	require.NoError(t, d.Publish(context.Background(), order.Order{}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Close(ctx), context.DeadlineExceeded)
}

func TestDeliveryErrorKeepsRunning(t *testing.T) {
	pub := &blockingPublisher{err: errors.New("redis down")}
	d := New(pub, discard(), 4, time.Second)
	go d.Run()

	require.NoError(t, d.Publish(context.Background(), order.Order{Total: 1}))
	require.NoError(t, d.Publish(context.Background(), order.Order{Total: 2}))
	require.NoError(t, d.Close(context.Background()))

	assert.Len(t, pub.published(), 2)
}

func TestQueuedOrderIsIsolated(t *testing.T) {
	pub := &blockingPublisher{}
	d := New(pub, discard(), 1, time.Second)

	o := order.Order{Items: []order.OrderItem{{ProductID: 1, Quantity: 2}}, Total: 31}
	require.NoError(t, d.Publish(context.Background(), o))
	o.Items[0].Quantity = 9

	go d.Run()
	require.NoError(t, d.Close(context.Background()))
	assert.Equal(t, uint32(2), pub.published()[0].Items[0].Quantity)
}
