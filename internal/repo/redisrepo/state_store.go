package redisrepo

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultKeyPrefix = "videomatch:visitor:"

type StateStore struct {
	rdb    redis.Cmdable
	prefix string
	// ttl of zero keeps keys forever
	ttl time.Duration
}

func NewStateStore(rdb redis.Cmdable, ttl time.Duration) *StateStore {
	return &StateStore{
		rdb:    rdb,
		prefix: DefaultKeyPrefix,
		ttl:    ttl,
	}
}

func (s *StateStore) redisKey(visitorID, key string) string {
	return s.prefix + visitorID + ":" + key
}

func (s *StateStore) Get(ctx context.Context, visitorID, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, s.redisKey(visitorID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *StateStore) Set(ctx context.Context, visitorID, key, value string) error {
	return s.rdb.Set(ctx, s.redisKey(visitorID, key), value, s.ttl).Err()
}

func (s *StateStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}
