package ratelimit

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a shared counter store for multi-node deployments. The
// window lives in a Redis key with a TTL, so every node sees the same
// counts.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a store over an existing Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Check implements Store using INCR plus a TTL set on the first request
// of each window.
func (s *RedisStore) Check(ctx context.Context, key string, cfg Config) (Decision, error) {
	redisKey := "ratelimit:" + key

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}
	if count == 1 {
		if err := s.client.PExpire(ctx, redisKey, cfg.Interval).Err(); err != nil {
			return Decision{}, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	resetIn := cfg.Interval
	if ttl, err := s.client.PTTL(ctx, redisKey).Result(); err == nil && ttl > 0 {
		resetIn = ttl
	}

	if count > int64(cfg.Limit) {
		return Decision{Allowed: false, Remaining: 0, ResetIn: resetIn}, nil
	}

	remaining := cfg.Limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Decision{Allowed: true, Remaining: remaining, ResetIn: resetIn}, nil
}

var _ Store = (*RedisStore)(nil)
var _ Store = (*MemoryStore)(nil)
