package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level. It implements
// all three hook interfaces.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks logging to l.
func NewLogHooks(l *log.Logger) *LogHooks {
	return &LogHooks{Logger: l}
}

// Register installs h for every event category.
func (h *LogHooks) Register() {
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetServerHooks(h)
}

func (h *LogHooks) OnDecodeStart(_ context.Context, format string) {
	h.Logger.Debug("decode start", "format", format)
}

func (h *LogHooks) OnDecodeComplete(_ context.Context, format string, members int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("decode failed", "format", format, "duration", d, "err", err)
		return
	}
	h.Logger.Debug("decode complete", "format", format, "members", members, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, members int) {
	h.Logger.Debug("render start", "members", members)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, bytes int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("render failed", "duration", d, "err", err)
		return
	}
	h.Logger.Debug("render complete", "bytes", bytes, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, requestID, method, route string) {
	h.Logger.Debug("request", "id", requestID, "method", method, "route", route)
}

func (h *LogHooks) OnResponse(_ context.Context, requestID, method, route string, status int, d time.Duration) {
	h.Logger.Debug("response", "id", requestID, "method", method, "route", route, "status", status, "duration", d)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ ServerHooks   = (*LogHooks)(nil)
)
