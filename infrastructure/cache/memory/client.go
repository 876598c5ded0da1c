// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Provides a process-local cache with TTL support and automatic cleanup

package memory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"newsfeed-app-api/core/interfaces"
	"newsfeed-app-api/pkg/config"
)

// MemoryCache implements the Cache interface using in-process storage
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache instance
func NewMemoryCache(cfg config.MemoryConfig) *MemoryCache {
	defaultExpiration := time.Duration(cfg.DefaultExpiration) * time.Second
	if defaultExpiration <= 0 {
		defaultExpiration = gocache.NoExpiration
	}

	return &MemoryCache{
		cache: gocache.New(defaultExpiration, 10*time.Minute),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, found := c.cache.Get(key)
	if !found {
		return nil, interfaces.ErrCacheMiss
	}

	stored := value.([]byte)

	// Return a copy so callers cannot mutate the cached slice
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value in the cache with the given TTL
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}

	c.cache.Set(key, valueCopy, ttl)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.cache.Delete(key)
	return nil
}
