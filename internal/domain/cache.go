package domain

import (
	"context"
	"time"
)

// CacheError represents an error originating from the cache.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss is returned when a key is not found in the cache.
const ErrCacheMiss = CacheError("cache: key not found")

// RecordStore is the key-value persistence port backing user stats.
// A key is either present (its last written value is returned) or absent
// (Get returns ErrCacheMiss). Implementations are the cookie adapter for
// browser-held records and the Redis adapter for server-side records.
type RecordStore interface {
	// Get retrieves the value stored under key.
	// It returns ErrCacheMiss if the key is not found.
	Get(ctx context.Context, key string) (string, error)

	// Set writes value under key, overwriting any existing value.
	// expiration is the duration for which the record should be retained.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
}

// Cache defines the interface (port) for caching operations.
// Implementations of this interface will be the adapters (e.g., RedisCacheAdapter).
// Every Cache is also a RecordStore.
type Cache interface {
	RecordStore

	// Delete removes an item from the cache.
	// It should not return an error if the key is not found.
	Delete(ctx context.Context, key string) error

	// Ping checks the health of the cache service.
	Ping(ctx context.Context) error
}
