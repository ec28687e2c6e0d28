package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/geosvg/pkg/cache"
	"github.com/matzehuels/geosvg/pkg/geo"
	gio "github.com/matzehuels/geosvg/pkg/io"
	"github.com/matzehuels/geosvg/pkg/observability"
)

// Runner executes requests against a cache.
//
// The Runner holds no per-request state, so multiple goroutines can share
// one Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Decode parses the request input. It never consults the cache.
func (r *Runner) Decode(ctx context.Context, req Request) (geo.GeometryCollection[float64], error) {
	if err := req.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnDecodeStart(ctx, string(req.Format))

	start := time.Now()
	gc, err := gio.Decode([]byte(req.Input), req.Format)
	hooks.OnDecodeComplete(ctx, string(req.Format), len(gc), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.logger(req).Debug("decoded input", "format", req.Format, "members", len(gc), "duration", time.Since(start))
	return gc, nil
}

// Render produces the full document for req, serving it from the cache
// when an identical request was rendered before.
func (r *Runner) Render(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	if err := req.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	inputHash, styleHash, err := req.hashes()
	if err != nil {
		return nil, err
	}
	key := r.Keyer.ArtifactKey(inputHash, styleHash, req.ArtifactKeyOpts())

	if !req.Refresh {
		if a, ok := r.lookup(ctx, key, "artifact"); ok {
			r.logger(req).Info("rendered document", "members", a.Members, "bytes", len(a.SVG), "cached", true)
			return &Result{SVG: a.SVG, ViewBox: a.ViewBox, Members: a.Members, CacheHit: true, Duration: time.Since(start)}, nil
		}
	}

	gc, err := r.Decode(ctx, req)
	if err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, len(gc))
	renderStart := time.Now()
	doc := Build(gc, req.Style, req.DocumentOptions()...)
	data := doc.Render()
	hooks.OnRenderComplete(ctx, len(data), time.Since(renderStart), nil)

	res := &Result{SVG: data, ViewBox: doc.ViewBox(), Members: len(gc), Duration: time.Since(start)}
	r.store(ctx, key, "artifact", artifact{SVG: res.SVG, ViewBox: res.ViewBox, Members: res.Members}, cache.TTLArtifact)

	r.logger(req).Info("rendered document", "members", res.Members, "bytes", len(res.SVG), "duration", res.Duration)
	return res, nil
}

// Bounds computes the union view box of the input under the request style,
// without margin. Document options do not affect the result.
func (r *Runner) Bounds(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	if err := req.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	inputHash, styleHash, err := req.hashes()
	if err != nil {
		return nil, err
	}
	key := r.Keyer.BoundsKey(inputHash, styleHash)

	if !req.Refresh {
		if a, ok := r.lookup(ctx, key, "bounds"); ok {
			return &Result{ViewBox: a.ViewBox, Members: a.Members, CacheHit: true, Duration: time.Since(start)}, nil
		}
	}

	gc, err := r.Decode(ctx, req)
	if err != nil {
		return nil, err
	}
	vb := Build(gc, req.Style).ViewBox()

	res := &Result{ViewBox: vb, Members: len(gc), Duration: time.Since(start)}
	r.store(ctx, key, "bounds", artifact{ViewBox: vb, Members: res.Members}, cache.TTLBounds)

	r.logger(req).Debug("computed bounds", "viewbox", vb.String(), "members", res.Members)
	return res, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) lookup(ctx context.Context, key, keyType string) (artifact, bool) {
	hooks := observability.Cache()
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Debug("cache read failed", "type", keyType, "error", err)
	}
	if err != nil || !hit {
		hooks.OnCacheMiss(ctx, keyType)
		return artifact{}, false
	}
	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		// Unreadable entries are recomputed and overwritten.
		hooks.OnCacheMiss(ctx, keyType)
		return artifact{}, false
	}
	hooks.OnCacheHit(ctx, keyType)
	return a, true
}

func (r *Runner) store(ctx context.Context, key, keyType string, a artifact, ttl time.Duration) {
	data, err := json.Marshal(a)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Debug("cache write failed", "type", keyType, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

func (r *Runner) logger(req Request) *log.Logger {
	if req.Logger != nil {
		return req.Logger
	}
	return r.Logger
}
