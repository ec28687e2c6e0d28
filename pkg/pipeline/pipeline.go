// Package pipeline turns geometry text into an SVG document.
//
// This package implements the decode → render → document pipeline shared by
// the CLI and the HTTP server. Centralizing it keeps caching, validation and
// logging identical across entry points.
//
// # Stages
//
//  1. Decode: parse GeoJSON or WKT into a geometry collection (pkg/io)
//  2. Render: draw every member with the request style (pkg/svg)
//  3. Document: wrap the fragments in an <svg> element sized by the union
//     view box plus margin (pkg/document)
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Render(ctx, pipeline.Request{
//	    Input: "LINESTRING (0 0, 10 10)",
//	    Style: style.Default().WithStrokeWidth(2),
//	})
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(res.SVG)
package pipeline

import (
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/geosvg/pkg/cache"
	"github.com/matzehuels/geosvg/pkg/config"
	"github.com/matzehuels/geosvg/pkg/document"
	errs "github.com/matzehuels/geosvg/pkg/errors"
	"github.com/matzehuels/geosvg/pkg/geo"
	gio "github.com/matzehuels/geosvg/pkg/io"
	"github.com/matzehuels/geosvg/pkg/style"
	"github.com/matzehuels/geosvg/pkg/svg"
)

// MaxInputSize bounds the geometry text accepted by a single request.
const MaxInputSize = 32 << 20

// Request is one render or bounds job. It decodes from the JSON body of
// the HTTP API; document options are inlined.
type Request struct {
	Input  string      `json:"input"`
	Format gio.Format  `json:"format,omitempty"`
	Style  style.Style `json:"style"`

	config.Document

	// Refresh skips the cache lookup. The fresh result is still stored.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result is the outcome of a pipeline run.
type Result struct {
	// SVG is the complete document. Empty for bounds requests.
	SVG []byte

	// ViewBox is the document view box (margin included) for renders and
	// the raw union bound for bounds requests.
	ViewBox svg.ViewBox

	// Members counts the top-level geometries decoded from the input.
	Members int

	CacheHit bool
	Duration time.Duration
}

// artifact is the cached form of a Result.
type artifact struct {
	SVG     []byte      `json:"svg,omitempty"`
	ViewBox svg.ViewBox `json:"viewbox"`
	Members int         `json:"members"`
}

// ValidateAndSetDefaults checks the request and normalizes its format.
// It is idempotent.
func (r *Request) ValidateAndSetDefaults() error {
	if r.validated {
		return nil
	}
	if r.Input == "" {
		return errs.New(errs.ErrCodeInvalidInput, "input is required")
	}
	if len(r.Input) > MaxInputSize {
		return errs.New(errs.ErrCodeInvalidInput, "input exceeds %d bytes", MaxInputSize)
	}
	f, err := gio.ParseFormat(string(r.Format))
	if err != nil {
		return err
	}
	if f == gio.FormatAuto {
		f = gio.Sniff([]byte(r.Input))
	}
	r.Format = f

	if err := config.ValidateStyle(r.Style); err != nil {
		return err
	}
	if err := errs.ValidateNonNegative("margin", r.Margin); err != nil {
		return err
	}
	r.validated = true
	return nil
}

// ArtifactKeyOpts returns the cache key options for the rendered document.
func (r *Request) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format:     string(r.Format),
		Margin:     r.Margin,
		Stylesheet: r.Stylesheet,
	}
	if !r.Background.IsZero() {
		opts.Background = r.Background.String()
	}
	return opts
}

// DocumentOptions returns the options for document.New.
func (r *Request) DocumentOptions() []document.Option {
	opts := []document.Option{document.WithMargin(r.Margin)}
	if r.Stylesheet != "" {
		opts = append(opts, document.WithStylesheet(r.Stylesheet))
	}
	if !r.Background.IsZero() {
		opts = append(opts, document.WithBackground(r.Background))
	}
	return opts
}

func (r *Request) hashes() (input, styleHash string, err error) {
	data, err := json.Marshal(r.Style)
	if err != nil {
		return "", "", errs.Wrap(errs.ErrCodeInternal, err, "hash style")
	}
	return cache.Hash([]byte(r.Input)), cache.Hash(data), nil
}

// Build lays out one document layer per collection member, all drawn with s.
func Build(gc geo.GeometryCollection[float64], s style.Style, opts ...document.Option) *document.Svg {
	d := document.New(nil, s, opts...)
	for i, g := range gc {
		d.And(svg.Of(g), svg.MemberStyle(s, i, len(gc)))
	}
	return d
}
