package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrUnavailable is returned when the backing cache cannot be reached.
var ErrUnavailable = errors.New("cache unavailable")

// Loader produces a fresh value for a cache key on miss.
type Loader func(ctx context.Context) (bool, error)

// Cache is the expiring boolean gate contract.
//
// GetOrLoad returns the cached value when the key holds true; otherwise it
// runs load, stores the result with ttl, and returns it. When load fails the
// entry is evicted and the error is returned, so the next call loads again.
type Cache interface {
	GetOrLoad(ctx context.Context, key string, ttl time.Duration, load Loader) (bool, error)
	Put(ctx context.Context, key string, value bool, ttl time.Duration) error
	Remove(ctx context.Context, key string) error
}

// RedisCache is a [Cache] backed by Redis, storing "1"/"0" strings with a
// per-entry TTL.
type RedisCache struct {
	redis  redis.UniversalClient
	prefix string
}

// NewRedisCache creates a [RedisCache] namespaced under prefix.
func NewRedisCache(redisClient redis.UniversalClient, prefix string) *RedisCache {
	return &RedisCache{redis: redisClient, prefix: prefix}
}

func (c *RedisCache) key(k string) string {
	if c.prefix == "" {
		return k
	}
	return c.prefix + ":" + k
}

// GetOrLoad implements the [Cache] gate. Only a stored true short-circuits
// the loader; a stored false behaves like a miss so a failed or negative
// outcome never suppresses a retry.
//
//	Performance: 1 Redis GET on hit, GET + SET on miss.
func (c *RedisCache) GetOrLoad(ctx context.Context, key string, ttl time.Duration, load Loader) (bool, error) {
	val, err := c.redis.Get(ctx, c.key(key)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err == nil && val == "1" {
		return true, nil
	}

	fresh, loadErr := load(ctx)
	if loadErr != nil {
		// Best effort: a stale entry must not outlive a failed load.
		_ = c.redis.Del(ctx, c.key(key)).Err()
		return false, loadErr
	}

	if err := c.Put(ctx, key, fresh, ttl); err != nil {
		return fresh, err
	}
	return fresh, nil
}

// Put stores value under key for ttl. A non-positive ttl stores nothing.
func (c *RedisCache) Put(ctx context.Context, key string, value bool, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	payload := "0"
	if value {
		payload = "1"
	}
	if err := c.redis.Set(ctx, c.key(key), payload, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Remove evicts key. Removing an absent key is not an error.
func (c *RedisCache) Remove(ctx context.Context, key string) error {
	if err := c.redis.Del(ctx, c.key(key)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
