package io

import (
	"strconv"
	"strings"

	errs "github.com/matzehuels/geosvg/pkg/errors"
	"github.com/matzehuels/geosvg/pkg/geo"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokWord
	tokNumber
	tokLParen
	tokRParen
	tokComma
	tokSemicolon
	tokEquals
	tokIllegal
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func (t token) String() string {
	if t.kind == tokEOF {
		return "end of input"
	}
	return strconv.Quote(t.text)
}

type lexer struct {
	src string
	pos int
}

func (l *lexer) next() token {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, pos: l.pos}
	}

	start := l.pos
	c := l.src[l.pos]
	if k, ok := punctuation[c]; ok {
		l.pos++
		return token{kind: k, text: string(c), pos: start}
	}

	switch {
	case isLetter(c):
		for l.pos < len(l.src) && isLetter(l.src[l.pos]) {
			l.pos++
		}
		return token{kind: tokWord, text: strings.ToUpper(l.src[start:l.pos]), pos: start}
	case isDigit(c) || c == '-' || c == '+' || c == '.':
		for l.pos < len(l.src) && isNumberByte(l.src[l.pos]) {
			l.pos++
		}
		return token{kind: tokNumber, text: l.src[start:l.pos], pos: start}
	}
	l.pos++
	return token{kind: tokIllegal, text: string(c), pos: start}
}

var punctuation = map[byte]tokenKind{
	'(': tokLParen,
	')': tokRParen,
	',': tokComma,
	';': tokSemicolon,
	'=': tokEquals,
}

func isSpace(c byte) bool  { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isNumberByte(c byte) bool {
	return isDigit(c) || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E'
}

// Curve and surface types that are valid WKT but have no geometry here.
var unsupportedWKT = map[string]bool{
	"CIRCULARSTRING":    true,
	"COMPOUNDCURVE":     true,
	"CURVEPOLYGON":      true,
	"MULTICURVE":        true,
	"MULTISURFACE":      true,
	"POLYHEDRALSURFACE": true,
	"TIN":               true,
}

var wktTags = map[string]bool{
	"POINT":              true,
	"LINESTRING":         true,
	"POLYGON":            true,
	"TRIANGLE":           true,
	"MULTIPOINT":         true,
	"MULTILINESTRING":    true,
	"MULTIPOLYGON":       true,
	"GEOMETRYCOLLECTION": true,
}

type wktParser struct {
	lex lexer
	tok token
}

// ParseWKT parses one or more WKT geometries separated by whitespace or
// semicolons. A lone GEOMETRYCOLLECTION is returned as the collection
// itself; anything else is wrapped in a new collection in input order.
func ParseWKT(src string) (geo.GeometryCollection[float64], error) {
	p := &wktParser{lex: lexer{src: src}}
	p.advance()

	var gc geo.GeometryCollection[float64]
	for {
		for p.tok.kind == tokSemicolon {
			p.advance()
		}
		if p.tok.kind == tokEOF {
			break
		}
		g, err := p.geometry(0)
		if err != nil {
			return nil, err
		}
		gc = append(gc, g)
	}

	if len(gc) == 0 {
		return nil, errs.New(errs.ErrCodeInvalidFormat, "wkt: no geometry in input")
	}
	if len(gc) == 1 {
		if inner, ok := gc[0].(geo.GeometryCollection[float64]); ok {
			return inner, nil
		}
	}
	return gc, nil
}

// ParseWKTGeometry parses exactly one WKT geometry.
func ParseWKTGeometry(src string) (geo.Geometry[float64], error) {
	p := &wktParser{lex: lexer{src: src}}
	p.advance()
	g, err := p.geometry(0)
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, p.errorf("unexpected %s after geometry", p.tok)
	}
	return g, nil
}

func (p *wktParser) advance() { p.tok = p.lex.next() }

func (p *wktParser) errorf(format string, args ...any) error {
	return errs.New(errs.ErrCodeInvalidFormat, "wkt: "+format+" at offset %d", append(args, p.tok.pos)...)
}

func (p *wktParser) expect(k tokenKind, what string) error {
	if p.tok.kind != k {
		return p.errorf("expected %s, got %s", what, p.tok)
	}
	p.advance()
	return nil
}

func (p *wktParser) geometry(depth int) (geo.Geometry[float64], error) {
	if err := p.skipSRID(); err != nil {
		return nil, err
	}
	if p.tok.kind != tokWord {
		return nil, p.errorf("expected geometry type, got %s", p.tok)
	}
	tag := p.tok.text
	if !wktTags[tag] && !unsupportedWKT[tag] {
		tag = trimDimension(tag)
	}
	switch {
	case unsupportedWKT[tag]:
		return nil, errs.New(errs.ErrCodeUnsupported, "wkt: %s is not supported", tag)
	case !wktTags[tag]:
		return nil, p.errorf("unknown geometry type %s", p.tok)
	}
	p.advance()
	if p.tok.kind == tokWord && (p.tok.text == "Z" || p.tok.text == "M" || p.tok.text == "ZM") {
		p.advance()
	}

	empty := p.tok.kind == tokWord && p.tok.text == "EMPTY"
	if empty {
		p.advance()
	}

	switch tag {
	case "POINT":
		if empty {
			return nil, errs.New(errs.ErrCodeInvalidGeometry, "wkt: POINT EMPTY has no coordinates")
		}
		if err := p.expect(tokLParen, "'('"); err != nil {
			return nil, err
		}
		c, err := p.coord()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return geo.Point[float64]{Coord: c}, nil

	case "LINESTRING":
		if empty {
			return geo.LineString[float64]{}, nil
		}
		cs, err := p.coordList()
		if err != nil {
			return nil, err
		}
		if len(cs) < 2 {
			return nil, errs.New(errs.ErrCodeInvalidGeometry, "wkt: LINESTRING needs at least 2 points")
		}
		return geo.LineString[float64](cs), nil

	case "POLYGON":
		if empty {
			return geo.Polygon[float64]{}, nil
		}
		return p.polygon()

	case "TRIANGLE":
		if empty {
			return nil, errs.New(errs.ErrCodeInvalidGeometry, "wkt: TRIANGLE EMPTY has no vertices")
		}
		poly, err := p.polygon()
		if err != nil {
			return nil, err
		}
		ring := poly.Exterior
		if len(poly.Interiors) > 0 || len(ring) != 4 {
			return nil, errs.New(errs.ErrCodeInvalidGeometry, "wkt: TRIANGLE needs one ring of 3 distinct points")
		}
		return geo.Triangle[float64]{ring[0], ring[1], ring[2]}, nil

	case "MULTIPOINT":
		if empty {
			return geo.MultiPoint[float64]{}, nil
		}
		return p.multiPoint()

	case "MULTILINESTRING":
		if empty {
			return geo.MultiLineString[float64]{}, nil
		}
		var mls geo.MultiLineString[float64]
		err := p.list(func() error {
			cs, err := p.coordList()
			mls = append(mls, cs)
			return err
		})
		return mls, err

	case "MULTIPOLYGON":
		if empty {
			return geo.MultiPolygon[float64]{}, nil
		}
		var mp geo.MultiPolygon[float64]
		err := p.list(func() error {
			poly, err := p.polygon()
			mp = append(mp, poly)
			return err
		})
		return mp, err
	}

	// GEOMETRYCOLLECTION
	if empty {
		return geo.GeometryCollection[float64]{}, nil
	}
	if depth >= maxDepth {
		return nil, errs.New(errs.ErrCodeInvalidGeometry, "wkt: geometry collections nested deeper than %d", maxDepth)
	}
	var gc geo.GeometryCollection[float64]
	err := p.list(func() error {
		g, err := p.geometry(depth + 1)
		gc = append(gc, g)
		return err
	})
	return gc, err
}

// skipSRID consumes an EWKT "SRID=n;" prefix.
func (p *wktParser) skipSRID() error {
	if p.tok.kind != tokWord || p.tok.text != "SRID" {
		return nil
	}
	p.advance()
	if err := p.expect(tokEquals, "'='"); err != nil {
		return err
	}
	if err := p.expect(tokNumber, "SRID"); err != nil {
		return err
	}
	return p.expect(tokSemicolon, "';'")
}

func trimDimension(tag string) string {
	for _, suffix := range []string{"ZM", "Z", "M"} {
		if base, ok := strings.CutSuffix(tag, suffix); ok && wktTags[base] {
			return base
		}
	}
	return tag
}

// list parses "(" item {"," item} ")".
func (p *wktParser) list(item func() error) error {
	if err := p.expect(tokLParen, "'('"); err != nil {
		return err
	}
	for {
		if err := item(); err != nil {
			return err
		}
		if p.tok.kind != tokComma {
			break
		}
		p.advance()
	}
	return p.expect(tokRParen, "')' or ','")
}

func (p *wktParser) coord() (geo.Coord[float64], error) {
	var vals []float64
	for p.tok.kind == tokNumber {
		v, err := strconv.ParseFloat(p.tok.text, 64)
		if err != nil {
			return geo.Coord[float64]{}, p.errorf("invalid number %s", p.tok)
		}
		vals = append(vals, v)
		p.advance()
	}
	if len(vals) < 2 || len(vals) > 4 {
		return geo.Coord[float64]{}, p.errorf("expected 2 to 4 ordinates, got %d", len(vals))
	}
	return geo.C(vals[0], vals[1]), nil
}

func (p *wktParser) coordList() ([]geo.Coord[float64], error) {
	var cs []geo.Coord[float64]
	err := p.list(func() error {
		c, err := p.coord()
		cs = append(cs, c)
		return err
	})
	return cs, err
}

func (p *wktParser) polygon() (geo.Polygon[float64], error) {
	var ringsOut []geo.LineString[float64]
	err := p.list(func() error {
		cs, err := p.coordList()
		if err != nil {
			return err
		}
		if len(cs) < 3 {
			return errs.New(errs.ErrCodeInvalidGeometry, "wkt: polygon ring %d has %d points, need at least 3", len(ringsOut), len(cs))
		}
		ringsOut = append(ringsOut, cs)
		return nil
	})
	if err != nil {
		return geo.Polygon[float64]{}, err
	}
	return geo.NewPolygon(ringsOut[0], ringsOut[1:]...), nil
}

// multiPoint accepts both "(1 2, 3 4)" and "((1 2), (3 4))".
func (p *wktParser) multiPoint() (geo.MultiPoint[float64], error) {
	var mp geo.MultiPoint[float64]
	err := p.list(func() error {
		if p.tok.kind == tokWord && p.tok.text == "EMPTY" {
			p.advance()
			return nil
		}
		wrapped := p.tok.kind == tokLParen
		if wrapped {
			p.advance()
		}
		c, err := p.coord()
		if err != nil {
			return err
		}
		if wrapped {
			if err := p.expect(tokRParen, "')'"); err != nil {
				return err
			}
		}
		mp = append(mp, geo.Point[float64]{Coord: c})
		return nil
	})
	return mp, err
}
