package imagecache

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// FileCache stores entries as files in a directory, for CLI usage.
// Image payloads are written raw; an optional sidecar file holds the
// expiry so binary assets aren't inflated by an envelope encoding.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache in the given directory.
// The directory is created if it doesn't exist.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Get retrieves a value from the cache.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	if expired, err := c.expired(path); err != nil || expired {
		if expired {
			_ = os.Remove(path)
			_ = os.Remove(path + expSuffix)
		}
		return nil, false, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores a value in the cache. A ttl of zero means no expiration.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	if ttl > 0 {
		deadline := strconv.FormatInt(time.Now().Add(ttl).UnixNano(), 10)
		return os.WriteFile(path+expSuffix, []byte(deadline), 0644)
	}
	// No TTL: drop any stale sidecar from a previous Set.
	_ = os.Remove(path + expSuffix)
	return nil
}

// Delete removes a value from the cache.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	path := c.path(key)
	_ = os.Remove(path + expSuffix)
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for the file cache.
func (c *FileCache) Close() error {
	return nil
}

// expSuffix names the expiry sidecar next to each entry.
const expSuffix = ".exp"

// expired reports whether the entry at path has passed its deadline.
// Entries without a sidecar never expire; an unreadable sidecar counts
// as expired so corrupt entries get purged.
func (c *FileCache) expired(path string) (bool, error) {
	raw, err := os.ReadFile(path + expSuffix)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	deadline, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return true, nil
	}
	return time.Now().UnixNano() > deadline, nil
}

// path converts a cache key to a file path. The first two hash chars
// shard entries into subdirectories so one directory doesn't fill up.
func (c *FileCache) path(key string) string {
	hash := Hash([]byte(key))
	return filepath.Join(c.dir, hash[:2], hash[2:]+".img")
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
