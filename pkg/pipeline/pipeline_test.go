package pipeline

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/geosvg/pkg/cache"
	"github.com/matzehuels/geosvg/pkg/config"
	errs "github.com/matzehuels/geosvg/pkg/errors"
	gio "github.com/matzehuels/geosvg/pkg/io"
	"github.com/matzehuels/geosvg/pkg/observability"
	"github.com/matzehuels/geosvg/pkg/style"
	"github.com/matzehuels/geosvg/pkg/svg"
)

func TestRequestValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name       string
		req        Request
		wantCode   errs.Code
		wantFormat gio.Format
	}{
		{"wkt sniffed", Request{Input: "POINT (1 2)"}, "", gio.FormatWKT},
		{"geojson sniffed", Request{Input: ` {"type":"Point","coordinates":[1,2]}`}, "", gio.FormatGeoJSON},
		{"explicit alias", Request{Input: "POINT (1 2)", Format: "json"}, "", gio.FormatGeoJSON},
		{"empty input", Request{}, errs.ErrCodeInvalidInput, ""},
		{"unknown format", Request{Input: "x", Format: "kml"}, errs.ErrCodeInvalidFormat, ""},
		{"negative margin", Request{Input: "x", Document: config.Document{Margin: -1}}, errs.ErrCodeInvalidStyle, ""},
		{"bad opacity", Request{Input: "x", Style: style.Default().WithOpacity(2)}, errs.ErrCodeInvalidStyle, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.ValidateAndSetDefaults()
			if tt.wantCode != "" {
				if !errs.Is(err, tt.wantCode) {
					t.Fatalf("error = %v, want code %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.req.Format != tt.wantFormat {
				t.Errorf("Format = %q, want %q", tt.req.Format, tt.wantFormat)
			}
		})
	}
}

func TestArtifactKeyOptsDistinguishDocuments(t *testing.T) {
	base := Request{Input: "POINT (1 2)"}
	withBG := base
	withBG.Background = style.Named("white")
	withMargin := base
	withMargin.Margin = 5

	k := cache.NewDefaultKeyer()
	keys := map[string]bool{}
	for _, r := range []Request{base, withBG, withMargin} {
		keys[k.ArtifactKey("in", "st", r.ArtifactKeyOpts())] = true
	}
	if len(keys) != 3 {
		t.Errorf("got %d distinct keys, want 3", len(keys))
	}
}

func TestRunnerRender(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Render(context.Background(), Request{
		Input:    "LINESTRING (0 0, 10 10)",
		Document: config.Document{Margin: 2},
	})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	out := string(res.SVG)
	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		`viewBox="-3 -3 16 16" width="16" height="16"`,
		`<path d="M 0.0 0.0 L 10.0 10.0"/>`,
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if res.Members != 1 {
		t.Errorf("Members = %d, want 1", res.Members)
	}
	if res.CacheHit {
		t.Error("CacheHit = true with a null cache")
	}
}

func TestRunnerRenderLayersPerMember(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Render(context.Background(), Request{
		Input: "GEOMETRYCOLLECTION (LINESTRING (0 0, 1 1), LINESTRING (2 2, 3 3))",
		Style: style.Default().WithStroke(style.Named("red")),
	})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if res.Members != 2 {
		t.Errorf("Members = %d, want 2", res.Members)
	}
	if n := strings.Count(string(res.SVG), `stroke="red"`); n != 2 {
		t.Errorf("styled paths = %d, want 2", n)
	}
}

func TestRunnerRenderNumbersMemberIDs(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Render(context.Background(), Request{
		Input: "GEOMETRYCOLLECTION (LINESTRING (0 0, 1 1), LINESTRING (2 2, 3 3))",
		Style: style.Default().WithID("road").WithText("Main St"),
	})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	out := string(res.SVG)
	for _, want := range []string{`id="road-1"`, `id="road-2"`, `xlink:href="#road-2"`} {
		if strings.Count(out, want) != 1 {
			t.Errorf("want exactly one %q in:\n%s", want, out)
		}
	}
}

func TestRunnerRenderCaches(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()

	req := Request{Input: "POINT (1 2)", Style: style.Default().WithRadius(3)}
	first, err := r.Render(context.Background(), req)
	if err != nil {
		t.Fatalf("first Render() error: %v", err)
	}
	if first.CacheHit {
		t.Fatal("first render should miss")
	}

	second, err := r.Render(context.Background(), req)
	if err != nil {
		t.Fatalf("second Render() error: %v", err)
	}
	if !second.CacheHit {
		t.Error("second render should hit")
	}
	if string(second.SVG) != string(first.SVG) {
		t.Error("cached document differs from rendered one")
	}
	if second.ViewBox != first.ViewBox || second.Members != first.Members {
		t.Errorf("cached result = %v/%d, want %v/%d", second.ViewBox, second.Members, first.ViewBox, first.Members)
	}

	req.Refresh = true
	third, err := r.Render(context.Background(), req)
	if err != nil {
		t.Fatalf("refresh Render() error: %v", err)
	}
	if third.CacheHit {
		t.Error("refresh should bypass the cache")
	}

	req.Refresh = false
	req.Style = req.Style.WithRadius(4)
	fourth, err := r.Render(context.Background(), req)
	if err != nil {
		t.Fatalf("restyled Render() error: %v", err)
	}
	if fourth.CacheHit {
		t.Error("a different style must not hit")
	}
}

func TestRunnerBounds(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	r := NewRunner(c, nil, nil)

	tests := []struct {
		name  string
		input string
		want  svg.ViewBox
	}{
		{"line", "LINESTRING (0 0, 10 10)", svg.NewViewBox(-1, -1, 11, 11)},
		{"margin ignored", "LINESTRING (0 0, 10 10)", svg.NewViewBox(-1, -1, 11, 11)},
		{"empty collection", "GEOMETRYCOLLECTION EMPTY", svg.EmptyViewBox()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Bounds(context.Background(), Request{Input: tt.input, Document: config.Document{Margin: 50}})
			if err != nil {
				t.Fatalf("Bounds() error: %v", err)
			}
			if res.ViewBox.IsEmpty() != tt.want.IsEmpty() || (!tt.want.IsEmpty() && res.ViewBox != tt.want) {
				t.Errorf("ViewBox = %v, want %v", res.ViewBox, tt.want)
			}
			if len(res.SVG) != 0 {
				t.Error("bounds result should carry no document")
			}
		})
	}
}

func TestRunnerDecodeError(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	_, err := r.Render(context.Background(), Request{Input: "POINT (1"})
	if !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	decodes, renders int
	lastErr          error
}

func (h *recordingHooks) OnDecodeComplete(_ context.Context, _ string, _ int, _ time.Duration, err error) {
	h.decodes++
	h.lastErr = err
}

func (h *recordingHooks) OnRenderComplete(context.Context, int, time.Duration, error) {
	h.renders++
}

func TestRunnerEmitsHooks(t *testing.T) {
	h := &recordingHooks{}
	observability.SetPipelineHooks(h)
	defer observability.Reset()

	r := NewRunner(nil, nil, nil)
	if _, err := r.Render(context.Background(), Request{Input: "POINT (0 0)"}); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if _, err := r.Render(context.Background(), Request{Input: "POINT ("}); err == nil {
		t.Fatal("expected decode error")
	}

	if h.decodes != 2 {
		t.Errorf("decodes = %d, want 2", h.decodes)
	}
	if h.renders != 1 {
		t.Errorf("renders = %d, want 1", h.renders)
	}
	if h.lastErr == nil {
		t.Error("failed decode should report its error")
	}
}
