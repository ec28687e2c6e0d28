// Package cache stores rendered documents so that identical requests are
// served without re-decoding and re-rendering.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: one JSON file per entry under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for `geosvg serve` fleets
//   - [NullCache]: stores nothing, for --no-cache and tests
//
// Keys come from a [Keyer] so that every backend agrees on how inputs,
// styles and document options map to an entry:
//
//	k := cache.NewDefaultKeyer()
//	key := k.ArtifactKey(cache.Hash(input), cache.Hash(styleJSON), cache.ArtifactKeyOpts{Margin: 10})
//	if data, ok, _ := c.Get(ctx, key); ok {
//	    return data
//	}
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the stored bytes and true, or false on a miss. Expired
	// entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by backends that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// Default lifetimes.
const (
	TTLArtifact = 7 * 24 * time.Hour
	TTLBounds   = 7 * 24 * time.Hour
)

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey identifies a rendered document.
	ArtifactKey(inputHash, styleHash string, opts ArtifactKeyOpts) string
	// BoundsKey identifies a computed view box.
	BoundsKey(inputHash, styleHash string) string
}

// ArtifactKeyOpts are the document options that change the output bytes.
type ArtifactKeyOpts struct {
	Format     string  `json:"format,omitempty"`
	Margin     float64 `json:"margin,omitempty"`
	Stylesheet string  `json:"stylesheet,omitempty"`
	Background string  `json:"background,omitempty"`
}

// DefaultKeyer hashes every key component into a fixed-width key.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) ArtifactKey(inputHash, styleHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", inputHash, styleHash, opts)
}

func (DefaultKeyer) BoundsKey(inputHash, styleHash string) string {
	return hashKey("bounds", inputHash, styleHash)
}
