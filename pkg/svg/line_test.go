package svg

import (
	"strings"
	"testing"

	"github.com/matzehuels/geosvg/pkg/geo"
	"github.com/matzehuels/geosvg/pkg/style"
)

func TestRenderLine(t *testing.T) {
	l := geo.Line[float64]{Start: geo.C(0.0, 1.0), End: geo.C(2.5, 3.0)}
	got := RenderLine(l, style.Default().WithStroke(style.Named("blue")))
	if want := `<path d="M 0.0 1.0 L 2.5 3.0" stroke="blue"/>`; got != want {
		t.Errorf("RenderLine() = %s, want %s", got, want)
	}
}

func TestBoundLineIgnoresRadius(t *testing.T) {
	l := geo.Line[int]{Start: geo.C(0, 0), End: geo.C(10, 5)}

	tests := []struct {
		name  string
		style style.Style
		want  ViewBox
	}{
		{"default stroke", style.Default().WithRadius(50), NewViewBox(-1, -1, 11, 6)},
		{"wide stroke", style.Default().WithRadius(50).WithStrokeWidth(3), NewViewBox(-3, -3, 13, 8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BoundLine(l, tt.style); got != tt.want {
				t.Errorf("BoundLine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderLineString(t *testing.T) {
	ls := geo.LineString[int]{{0, 0}, {10, 0}, {10, 10}}
	got := RenderLineString(ls, style.Default())
	if want := `<path d="M 0 0 L 10 0 M 10 0 L 10 10"/>`; got != want {
		t.Errorf("RenderLineString() = %s, want %s", got, want)
	}
}

func TestRenderLineStringTextPath(t *testing.T) {
	ls := geo.LineString[int]{{0, 0}, {10, 0}}

	tests := []struct {
		name     string
		style    style.Style
		contains []string
		excludes []string
	}{
		{
			name:     "text without id",
			style:    style.Default().WithText("Main St"),
			excludes: []string{"<text", "textPath", "id="},
		},
		{
			name:     "id without text",
			style:    style.Default().WithID("road-1"),
			contains: []string{`id="road-1"`},
			excludes: []string{"<text", "textPath"},
		},
		{
			name:  "text and id",
			style: style.Default().WithText("Main St").WithID("road-1").WithTextClasses("street"),
			contains: []string{
				`<path d="M 0 0 L 10 0" id="road-1"/>`,
				`<text class="street"><textPath xlink:href="#road-1">Main St</textPath></text>`,
			},
			excludes: []string{"startOffset"},
		},
		{
			name:     "start offset",
			style:    style.Default().WithText("Main St").WithID("road-1").WithTextStartOffset("50%"),
			contains: []string{`<textPath xlink:href="#road-1" startOffset="50%">`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderLineString(ls, tt.style)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("missing %q\nGot: %s", want, got)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("should not contain %q\nGot: %s", bad, got)
				}
			}
		})
	}
}

func TestBoundLineString(t *testing.T) {
	ls := geo.LineString[float64]{{0, 0}, {4, 2}, {-1, 6}}
	s := style.Default().WithRadius(10)

	want := BoundLine(geo.Line[float64]{Start: ls[0], End: ls[1]}, s).
		Add(BoundLine(geo.Line[float64]{Start: ls[1], End: ls[2]}, s))
	if got := BoundLineString(ls, s); got != want {
		t.Errorf("BoundLineString() = %v, want %v", got, want)
	}
	if want := NewViewBox(-2, -1, 5, 7); BoundLineString(ls, s) != want {
		t.Errorf("BoundLineString() = %v, want %v", BoundLineString(ls, s), want)
	}
}

func TestMultiLineString(t *testing.T) {
	mls := geo.MultiLineString[int]{
		{{0, 0}, {1, 1}},
		{{5, 5}, {6, 7}},
	}
	s := style.Default()

	got := RenderMultiLineString(mls, s)
	if want := RenderLineString(mls[0], s) + RenderLineString(mls[1], s); got != want {
		t.Errorf("RenderMultiLineString() = %s, want %s", got, want)
	}
	if got, want := BoundMultiLineString(mls, s), NewViewBox(-1, -1, 7, 8); got != want {
		t.Errorf("BoundMultiLineString() = %v, want %v", got, want)
	}
}

func TestMemberIDsAreUnique(t *testing.T) {
	road := geo.LineString[float64]{geo.C(0.0, 0.0), geo.C(1.0, 1.0)}
	s := style.Default().WithText("Main St").WithID("road")

	tests := []struct {
		name    string
		got     string
		want    []string
		wantNot []string
	}{
		{
			name:    "multi line string",
			got:     Render[float64](geo.MultiLineString[float64]{road, road}, s),
			want:    []string{`id="road-1"`, `id="road-2"`, `xlink:href="#road-1"`, `xlink:href="#road-2"`},
			wantNot: []string{`id="road"`},
		},
		{
			name: "nested collection",
			got: Render[float64](geo.GeometryCollection[float64]{
				road,
				geo.MultiLineString[float64]{road, road},
			}, s),
			want: []string{`id="road-1"`, `id="road-2-1"`, `id="road-2-2"`},
		},
		{
			name: "single member keeps the id",
			got:  Render[float64](geo.MultiLineString[float64]{road}, s),
			want: []string{`id="road"`, `xlink:href="#road"`},
		},
		{
			name: "items",
			got:  Items{Of[float64](road), Of[float64](road)}.SVG(s),
			want: []string{`id="road-1"`, `id="road-2"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, want := range tt.want {
				if n := strings.Count(tt.got, want); n != 1 {
					t.Errorf("%q appears %d times, want once\nGot: %s", want, n, tt.got)
				}
			}
			for _, bad := range tt.wantNot {
				if strings.Contains(tt.got, bad) {
					t.Errorf("output contains %q\nGot: %s", bad, tt.got)
				}
			}
		})
	}
}
