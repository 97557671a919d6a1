// Package cache stores rendered images between runs.
//
// Rendering a large list is the slowest step of a visualization, and the
// output depends only on the DOT text, the image format and the renderer
// that produced it. Entries are
// keyed by [RenderKey] so that re-running an unchanged fixture skips the
// renderer entirely.
//
// Two implementations are provided: [FileCache] keeps entries under the
// user cache directory, and [NullCache] disables caching.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiration.
type Cache interface {
	// Get returns the data stored under key and whether it was found.
	// Expired or corrupt entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// RenderKey returns the cache key for the image of dot in format as
// produced by the named renderer.
func RenderKey(dot, format, renderer string) string {
	return hashKey("render", renderer, Hash([]byte(dot)), format)
}
