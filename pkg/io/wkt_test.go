package io

import (
	"reflect"
	"strings"
	"testing"

	errs "github.com/matzehuels/geosvg/pkg/errors"
	"github.com/matzehuels/geosvg/pkg/geo"
)

func TestParseWKTGeometry(t *testing.T) {
	square := geo.LineString[float64]{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}
	hole := geo.LineString[float64]{{1, 1}, {2, 1}, {2, 2}, {1, 1}}

	tests := []struct {
		name string
		in   string
		want geo.Geometry[float64]
	}{
		{"point", "POINT (1 2)", geo.Pt(1.0, 2.0)},
		{"point lower case", "point(1.5 -2e1)", geo.Pt(1.5, -20.0)},
		{"point z", "POINT Z (1 2 3)", geo.Pt(1.0, 2.0)},
		{"point zm suffix", "POINTZM (1 2 3 4)", geo.Pt(1.0, 2.0)},
		{"srid prefix", "SRID=4326;POINT(7 8)", geo.Pt(7.0, 8.0)},
		{"linestring", "LINESTRING (0 0, 1 1, 2 0)", geo.LineString[float64]{{0, 0}, {1, 1}, {2, 0}}},
		{"empty linestring", "LINESTRING EMPTY", geo.LineString[float64]{}},
		{"polygon with hole", "POLYGON ((0 0, 4 0, 4 4, 0 4, 0 0), (1 1, 2 1, 2 2, 1 1))", geo.Polygon[float64]{Exterior: square, Interiors: []geo.LineString[float64]{hole}}},
		{"open ring is closed", "POLYGON ((0 0, 4 0, 4 4, 0 4))", geo.Polygon[float64]{Exterior: square}},
		{"triangle", "TRIANGLE ((0 0, 1 0, 0 1, 0 0))", geo.Triangle[float64]{{0, 0}, {1, 0}, {0, 1}}},
		{"multipoint bare", "MULTIPOINT (1 2, 3 4)", geo.MultiPoint[float64]{geo.Pt(1.0, 2.0), geo.Pt(3.0, 4.0)}},
		{"multipoint wrapped", "MULTIPOINT ((1 2), (3 4))", geo.MultiPoint[float64]{geo.Pt(1.0, 2.0), geo.Pt(3.0, 4.0)}},
		{"multilinestring", "MULTILINESTRING ((0 0, 1 1), (2 2, 3 3))", geo.MultiLineString[float64]{{{0, 0}, {1, 1}}, {{2, 2}, {3, 3}}}},
		{"multipolygon", "MULTIPOLYGON (((0 0, 4 0, 4 4, 0 4, 0 0)))", geo.MultiPolygon[float64]{{Exterior: square}}},
		{"nested collection", "GEOMETRYCOLLECTION (POINT (1 2), GEOMETRYCOLLECTION (POINT (3 4)))", geo.GeometryCollection[float64]{
			geo.Pt(1.0, 2.0),
			geo.GeometryCollection[float64]{geo.Pt(3.0, 4.0)},
		}},
		{"empty collection", "GEOMETRYCOLLECTION EMPTY", geo.GeometryCollection[float64]{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWKTGeometry(tt.in)
			if err != nil {
				t.Fatalf("ParseWKTGeometry(%q) error: %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseWKTGeometry(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseWKTErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errs.Code
	}{
		{"missing paren", "POINT 1 2", errs.ErrCodeInvalidFormat},
		{"one ordinate", "POINT (1)", errs.ErrCodeInvalidFormat},
		{"five ordinates", "POINT (1 2 3 4 5)", errs.ErrCodeInvalidFormat},
		{"unknown type", "HEXAGON (1 2)", errs.ErrCodeInvalidFormat},
		{"curve", "CIRCULARSTRING (0 0, 1 1, 2 0)", errs.ErrCodeUnsupported},
		{"short linestring", "LINESTRING (0 0)", errs.ErrCodeInvalidGeometry},
		{"short ring", "POLYGON ((0 0, 1 1))", errs.ErrCodeInvalidGeometry},
		{"bad triangle", "TRIANGLE ((0 0, 1 0, 1 1, 0 1, 0 0))", errs.ErrCodeInvalidGeometry},
		{"point empty", "POINT EMPTY", errs.ErrCodeInvalidGeometry},
		{"trailing garbage", "POINT (1 2) )", errs.ErrCodeInvalidFormat},
		{"unterminated", "LINESTRING (0 0, 1 1", errs.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWKTGeometry(tt.in)
			if err == nil {
				t.Fatalf("ParseWKTGeometry(%q) should fail", tt.in)
			}
			if !errs.Is(err, tt.code) {
				t.Errorf("ParseWKTGeometry(%q) code = %v, want %v (%v)", tt.in, errs.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestParseWKTErrorOffset(t *testing.T) {
	_, err := ParseWKTGeometry("POINT (1 2, 3)")
	if err == nil || !strings.Contains(err.Error(), "at offset 10") {
		t.Errorf("error should point at the comma, got %v", err)
	}
}

func TestParseWKTSequence(t *testing.T) {
	src := `
POINT (1 2);
LINESTRING (0 0, 1 1)
POLYGON ((0 0, 1 0, 1 1, 0 0))
`
	gc, err := ParseWKT(src)
	if err != nil {
		t.Fatalf("ParseWKT() error: %v", err)
	}
	kinds := make([]string, len(gc))
	for i, g := range gc {
		kinds[i] = g.Kind()
	}
	if got, want := strings.Join(kinds, ","), "Point,LineString,Polygon"; got != want {
		t.Errorf("kinds = %s, want %s", got, want)
	}
}

func TestParseWKTUnwrapsSingleCollection(t *testing.T) {
	gc, err := ParseWKT("GEOMETRYCOLLECTION (POINT (1 2), POINT (3 4))")
	if err != nil {
		t.Fatalf("ParseWKT() error: %v", err)
	}
	if len(gc) != 2 {
		t.Errorf("len = %d, want the two members", len(gc))
	}
}

func TestParseWKTEmptyInput(t *testing.T) {
	for _, in := range []string{"", "  \n ", ";;"} {
		if _, err := ParseWKT(in); !errs.Is(err, errs.ErrCodeInvalidFormat) {
			t.Errorf("ParseWKT(%q) error = %v, want INVALID_FORMAT", in, err)
		}
	}
}

func TestParseWKTDepthLimit(t *testing.T) {
	src := strings.Repeat("GEOMETRYCOLLECTION (", maxDepth+2) + "POINT (0 0)" + strings.Repeat(")", maxDepth+2)
	if _, err := ParseWKT(src); !errs.Is(err, errs.ErrCodeInvalidGeometry) {
		t.Errorf("deep nesting error = %v, want INVALID_GEOMETRY", err)
	}
}
