// Package cache stores rendered figures keyed by everything that went into
// them.
//
// A render is a pure function of the input file bytes, the settings, the
// phase and the output format, so a repeated run with identical inputs can
// copy the previous image instead of drawing it again. [FileCache] keeps
// entries on disk for the CLI; [NullCache] disables caching.
//
// # Usage
//
//	c, err := cache.NewFileCache(dir)
//	key := cache.NewDefaultKeyer().RenderKey(cache.RenderKeyOpts{...})
//	if data, ok, _ := c.Get(ctx, key); ok {
//	    // reuse data
//	}
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Clearer is implemented by caches that can drop every entry at once.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// DefaultTTL is how long a rendered figure stays cached.
const DefaultTTL = 7 * 24 * time.Hour
