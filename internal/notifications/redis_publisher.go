package notifications

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const DefaultChannelPrefix = "videomatch:notifications:"

// RedisPublisher fans toasts out over pub/sub, one channel per visitor.
type RedisPublisher struct {
	rdb    redis.Cmdable
	prefix string
}

func NewRedisPublisher(rdb redis.Cmdable, prefix string) *RedisPublisher {
	if prefix == "" {
		prefix = DefaultChannelPrefix
	}
	return &RedisPublisher{rdb: rdb, prefix: prefix}
}

func (p *RedisPublisher) Channel(visitorID string) string {
	return p.prefix + visitorID
}

func (p *RedisPublisher) Notify(ctx context.Context, n Notification) error {
	b, err := Encode(n)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	if err := p.rdb.Publish(ctx, p.Channel(n.VisitorID), b).Err(); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}
