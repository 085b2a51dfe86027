package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sangkips/autocare-api/internal/application/analytics"
)

// DefaultRedisPrefix namespaces overview keys
const DefaultRedisPrefix = "analytics:overview:"

// RedisCache stores JSON-encoded payloads in Redis with a native key expiry, so several
// API replicas share one cache
type RedisCache struct {
	client redis.Cmdable
	prefix string
}

// NewRedisCache creates a Redis-backed payload cache
func NewRedisCache(client redis.Cmdable, prefix string) *RedisCache {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisCache{client: client, prefix: prefix}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*analytics.Payload, bool, error) {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	var payload analytics.Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, false, fmt.Errorf("decode cached overview %s: %w", key, err)
	}
	return &payload, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, payload *analytics.Payload, ttl time.Duration) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode overview %s: %w", key, err)
	}
	return c.client.Set(ctx, c.prefix+key, raw, ttl).Err()
}

// NewRedisClient parses a redis:// URL and validates connectivity
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rdb, nil
}
