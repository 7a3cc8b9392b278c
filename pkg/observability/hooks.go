// Package observability provides hooks for metrics and tracing.
//
// The core packages stay free of observability frameworks: they call these
// hook interfaces, which default to no-ops, and the application registers
// real implementations (Prometheus, OpenTelemetry, ...) at startup.
//
//	func main() {
//	    observability.SetIngestHooks(&myIngestHooks{})
//	    // ... run application
//	}
package observability

import (
	"sync"
	"time"
)

// IngestHooks receives events from message ingestion and history backfill.
type IngestHooks interface {
	// OnMessage records one ingested message and its token count.
	OnMessage(place, person string, tokens int)

	// OnBackfillStart records the start of a history replay for a place.
	OnBackfillStart(place string)

	// OnBackfillComplete records the end of a history replay.
	OnBackfillComplete(place string, messages int, duration time.Duration, err error)
}

// RenderHooks receives events from word-cloud rendering.
type RenderHooks interface {
	// OnRenderStart records the start of a render with canvas extent and
	// candidate drawable count.
	OnRenderStart(width, height, items int)

	// OnRenderComplete records how many drawables were placed. A non-nil
	// err means the render failed outright; canvas exhaustion is not an
	// error and shows up as placed < items.
	OnRenderComplete(placed int, err error)
}

// CacheHooks receives events from image cache operations.
type CacheHooks interface {
	OnCacheHit(backend string)
	OnCacheMiss(backend string)
	OnCacheSet(backend string, size int)
}

// NoopIngestHooks is a no-op implementation of IngestHooks.
type NoopIngestHooks struct{}

func (NoopIngestHooks) OnMessage(string, string, int) {}

func (NoopIngestHooks) OnBackfillStart(string) {}

func (NoopIngestHooks) OnBackfillComplete(string, int, time.Duration, error) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(int, int, int) {}

func (NoopRenderHooks) OnRenderComplete(int, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(string) {}

func (NoopCacheHooks) OnCacheMiss(string) {}

func (NoopCacheHooks) OnCacheSet(string, int) {}

var (
	ingestHooks IngestHooks = NoopIngestHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetIngestHooks registers custom ingest hooks. Call once at startup.
func SetIngestHooks(h IngestHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		ingestHooks = h
	}
}

// SetRenderHooks registers custom render hooks. Call once at startup.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. Call once at startup.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Ingest returns the registered ingest hooks.
func Ingest() IngestHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return ingestHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults. Primarily for tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	ingestHooks = NoopIngestHooks{}
	renderHooks = NoopRenderHooks{}
	cacheHooks = NoopCacheHooks{}
}
