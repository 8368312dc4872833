// Package cache provides byte caching for serialized network documents.
//
// The [Cache] interface abstracts the backend: [NewFileCache] for a
// local directory, [NewRedisCache] for a shared Redis instance, and
// [NewNullCache] to disable caching entirely. The server layer uses a
// cache read-through in front of the network store so repeated loads of
// the same network skip the database.
//
// Keys are produced by [NetworkKey] (hash-based, collision-free for
// distinct names); [Hash] is also used for content addressing (ETags).
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional TTL.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found;
	// a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// NetworkKey generates the cache key for a stored network document.
func NetworkKey(name string) string {
	return hashKey("network", name)
}
