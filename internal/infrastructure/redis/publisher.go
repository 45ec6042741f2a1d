package redis

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// Publisher implements ports.EventPublisher over Redis pub/sub. Subscribers
// (e.g. a websocket relay in front of the SPA) receive notification events
// without polling the database.
type Publisher struct {
	r *redis.Client
}

// NewPublisher creates a Redis-backed event publisher.
func NewPublisher(r *redis.Client) *Publisher {
	return &Publisher{r: r}
}

// Publish implements EventPublisher.Publish. Delivery is fire-and-forget;
// a channel with no subscribers drops the message.
func (p *Publisher) Publish(ctx context.Context, channel string, payload []byte) error {
	return p.r.Publish(ctx, channel, payload).Err()
}
