// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Cache.Get when the key does not exist.
// Callers use it to distinguish a cold cache from a failing cache
// backend; only a miss may trigger a read-through rebuild.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache defines the interface for cache operations.
// Implementations can be Redis, in-memory, or any other caching solution.
//
// Example usage:
//
//	cache := someCache // implements Cache interface
//
//	// Store a value
//	err := cache.Set(ctx, "newsfeeds:123", feedData, 1*time.Hour)
//
//	// Retrieve a value
//	data, err := cache.Get(ctx, "newsfeeds:123")
//	if errors.Is(err, interfaces.ErrCacheMiss) {
//		// rebuild from the feed store
//	}
//
//	// Delete a value
//	err = cache.Delete(ctx, "newsfeeds:123")
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte, ErrCacheMiss if the key does
	// not exist, or another error if the backend failed.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
