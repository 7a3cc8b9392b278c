// Package imagecache provides byte caches for fetched remote images.
//
// The emoji fetcher stores decoded-image source bytes here so repeated
// cloud renders don't refetch the same assets. Backends:
//   - memory: in-process map for development/testing
//   - file: directory of hashed entries for CLI usage
//   - redis: shared cache for multi-instance deployments
//   - null: caching disabled
//
// All backends share the Cache interface: opaque string keys, byte values,
// optional TTL.
package imagecache

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for caching operations.
var (
	// ErrNotFound is returned when a requested item does not exist.
	ErrNotFound = errors.New("not found")
)

// Cache is the interface for cache storage backends.
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL; zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
