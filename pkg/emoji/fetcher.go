package emoji

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"time"

	// Decoders for the formats emoji assets come in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/matzehuels/lexicloud/pkg/errors"
	"github.com/matzehuels/lexicloud/pkg/httputil"
	"github.com/matzehuels/lexicloud/pkg/imagecache"
	"github.com/matzehuels/lexicloud/pkg/observability"
)

const (
	cacheNamespace = "emoji"
	cacheTTL       = 24 * time.Hour
	fetchTimeout   = 10 * time.Second

	// maxAssetSize rejects absurd downloads; emoji assets are tiny.
	maxAssetSize = 4 << 20
)

// Fetcher resolves emoji IDs to decoded images. Fetched bytes are cached,
// so repeated renders hit the network once per asset.
type Fetcher struct {
	baseURL    string // asset URL template, e.g. "https://cdn.example.com/emojis/%s.png"
	client     *http.Client
	cache      imagecache.Cache
	retryDelay time.Duration
}

// NewFetcher creates a fetcher downloading assets from baseURL, which must
// contain one %s verb for the emoji ID. A nil cache disables caching.
func NewFetcher(baseURL string, cache imagecache.Cache) *Fetcher {
	if cache == nil {
		cache = imagecache.NewNullCache()
	}
	return &Fetcher{
		baseURL:    baseURL,
		client:     &http.Client{Timeout: fetchTimeout},
		cache:      cache,
		retryDelay: time.Second,
	}
}

// Get returns the decoded image for the emoji ID, from cache when possible.
func (f *Fetcher) Get(ctx context.Context, id string) (image.Image, error) {
	key := imagecache.Key(cacheNamespace, id)

	if data, hit, err := f.cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(cacheNamespace)
		if img, _, err := image.Decode(bytes.NewReader(data)); err == nil {
			return img, nil
		}
		// Undecodable cache entry: drop it and refetch.
		_ = f.cache.Delete(ctx, key)
	} else {
		observability.Cache().OnCacheMiss(cacheNamespace)
	}

	data, err := f.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidEmoji, err, "emoji %s is not a decodable image", id)
	}

	if err := f.cache.Set(ctx, key, data, cacheTTL); err == nil {
		observability.Cache().OnCacheSet(cacheNamespace, len(data))
	}
	return img, nil
}

// fetch downloads the asset bytes, retrying transient failures.
func (f *Fetcher) fetch(ctx context.Context, id string) ([]byte, error) {
	url := fmt.Sprintf(f.baseURL, id)
	var data []byte

	err := httputil.Retry(ctx, 3, f.retryDelay, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := f.client.Do(req)
		if err != nil {
			return httputil.Retryable(err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode >= 500:
			return httputil.Retryable(fmt.Errorf("fetch %s: status %d", url, resp.StatusCode))
		case resp.StatusCode != http.StatusOK:
			return errors.New(errors.ErrCodeNetwork, "fetch %s: status %d", url, resp.StatusCode)
		}

		data, err = io.ReadAll(io.LimitReader(resp.Body, maxAssetSize))
		if err != nil {
			return httputil.Retryable(err)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "fetching emoji %s", id)
	}
	return data, nil
}
