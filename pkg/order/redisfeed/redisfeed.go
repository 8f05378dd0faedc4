// Package redisfeed publishes accepted orders to a Redis pub/sub channel so
// kitchen displays can follow the counter in real time.
package redisfeed

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"fastfoodpos/pkg/order"
)

// DefaultChannel is used when no channel name is configured.
const DefaultChannel = "pos:orders"

type publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Feed implements order.Publisher on top of Redis PUBLISH.
type Feed struct {
	client  publisher
	channel string
}

// New creates a feed publishing on channel through client.
func New(client publisher, channel string) *Feed {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Feed{client: client, channel: channel}
}

// Channel returns the channel orders are published on.
func (f *Feed) Channel() string { return f.channel }

// Publish sends o as JSON. Having no subscribers is not an error.
func (f *Feed) Publish(ctx context.Context, o order.Order) error {
	b, err := json.Marshal(o.Clone())
	if err != nil {
		return errors.Wrap(err, "encode order")
	}
	if err := f.client.Publish(ctx, f.channel, b).Err(); err != nil {
		return errors.Wrapf(err, "publish to %s", f.channel)
	}
	return nil
}
