package cache

import (
	"context"
	"time"
)

// Cache stores serialized query results for a bounded time. Implementations
// must treat an expired entry exactly like a missing one.
type Cache interface {
	// Get returns the cached value and whether it was present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
