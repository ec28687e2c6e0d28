// Package observability lets a binary attach metrics or tracing to the
// render pipeline, the cache and the HTTP server without the libraries
// depending on any backend.
//
// Hooks are registered once at startup and default to no-ops:
//
//	func main() {
//	    observability.SetPipelineHooks(myMetrics)
//	    observability.SetCacheHooks(myMetrics)
//	}
//
// Libraries emit events through the registry:
//
//	observability.Pipeline().OnDecodeStart(ctx, "geojson")
//	gc, err := io.Decode(data, io.FormatGeoJSON)
//	observability.Pipeline().OnDecodeComplete(ctx, "geojson", len(gc), time.Since(start), err)
//
// [LogHooks] is a ready-made implementation that writes every event to a
// charmbracelet logger at debug level.
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives decode and render events.
type PipelineHooks interface {
	OnDecodeStart(ctx context.Context, format string)
	OnDecodeComplete(ctx context.Context, format string, members int, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, members int)
	OnRenderComplete(ctx context.Context, bytes int, duration time.Duration, err error)
}

// CacheHooks receives cache events. keyType is "artifact" or "bounds".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// ServerHooks receives events from the HTTP server.
type ServerHooks interface {
	OnRequest(ctx context.Context, requestID, method, route string)
	OnResponse(ctx context.Context, requestID, method, route string, status int, duration time.Duration)
}

type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnDecodeStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnDecodeComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, int)                                  {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, int, time.Duration, error)         {}

type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopServerHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	serverHooks   ServerHooks   = NoopServerHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers h; nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers h; nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetServerHooks registers h; nil is ignored.
func SetServerHooks(h ServerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		serverHooks = h
	}
}

func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

func Server() ServerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return serverHooks
}

// Reset restores the no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
	serverHooks = NoopServerHooks{}
}
