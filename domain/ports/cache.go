package ports

import (
	"context"
	"time"
)

// CachePort is a read-through JSON cache.
type CachePort interface {
	// GetOrSet fills target from the cache, or calls getter and caches its result.
	GetOrSet(ctx context.Context, key string, target interface{}, ttl time.Duration, getter func() (interface{}, error)) error
	Del(ctx context.Context, keys ...string) error
}
