// Package cache stores rendered calendar artifacts between runs.
//
// Three backends share the [Cache] interface:
//   - [FileCache]: one JSON file per entry under the user's cache directory (CLI)
//   - [RedisCache]: a shared Redis instance (render service)
//   - [NullCache]: stores nothing (--no-cache, tests)
//
// Keys are built by a [Keyer] from a hash of the calendar request plus the
// output settings, so two requests that would draw the same pages share an
// entry:
//
//	key := cache.NewDefaultKeyer().ArtifactKey(requestHash, cache.ArtifactKeyOpts{Format: "png", DPI: 150})
//	if data, hit, err := c.Get(ctx, key); err == nil && hit {
//		return data
//	}
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay cached.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiration.
type Cache interface {
	// Get returns the data stored under key. A missing or expired entry is
	// a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ArtifactKeyOpts are the output settings that change the bytes of an
// artifact without changing the calendar itself.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	DPI    float64 `json:"dpi"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key of the artifacts rendered for a request.
	ArtifactKey(requestHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key components into "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(requestHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", requestHash, opts)
}
