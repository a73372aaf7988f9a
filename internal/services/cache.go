package services

import (
	"context"
	"errors"
	"log"
	"time"
)

// Cache is the storage GetOrSet works against. RedisCache is the production
// implementation.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// GetOrSet retrieves a value from cache, or calls the callback to fetch and cache it
// The callback is only called if the key doesn't exist in cache. A nil cache
// always calls the callback.
func GetOrSet[T any](c Cache, ctx context.Context, key string, expiration time.Duration, fn func() (T, error)) (T, error) {
	var result T

	if c != nil {
		err := c.Get(ctx, key, &result)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			log.Printf("cache get %s: %v", key, err)
		}
	}

	result, err := fn()
	if err != nil {
		return result, err
	}

	if c != nil {
		// Store in cache (a failed write never fails the caller)
		if err := c.Set(ctx, key, result, expiration); err != nil {
			log.Printf("cache set %s: %v", key, err)
		}
	}

	return result, nil
}
