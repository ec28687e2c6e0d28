package geo

import "golang.org/x/exp/constraints"

// Scalar is the set of coordinate types a geometry can carry.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Geometry is the closed union of geometry variants.
type Geometry[T Scalar] interface {
	// Kind names the variant, e.g. "Point" or "MultiPolygon".
	Kind() string
	geometry() T
}

// Coord is a single x/y position.
type Coord[T Scalar] struct {
	X, Y T
}

// C is shorthand for Coord{X: x, Y: y}.
func C[T Scalar](x, y T) Coord[T] { return Coord[T]{X: x, Y: y} }

// Point is a single position.
type Point[T Scalar] struct {
	Coord[T]
}

// Pt builds a Point from its coordinates.
func Pt[T Scalar](x, y T) Point[T] { return Point[T]{Coord[T]{X: x, Y: y}} }

// Line is a single segment from Start to End.
type Line[T Scalar] struct {
	Start, End Coord[T]
}

// LineString is an open sequence of vertices.
type LineString[T Scalar] []Coord[T]

// Lines returns the consecutive segments of ls. A line string with fewer
// than two vertices has no segments.
func (ls LineString[T]) Lines() []Line[T] {
	if len(ls) < 2 {
		return nil
	}
	lines := make([]Line[T], 0, len(ls)-1)
	for i := 1; i < len(ls); i++ {
		lines = append(lines, Line[T]{Start: ls[i-1], End: ls[i]})
	}
	return lines
}

// IsClosed reports whether the first and last vertex coincide.
func (ls LineString[T]) IsClosed() bool {
	return len(ls) > 0 && ls[0] == ls[len(ls)-1]
}

// Polygon is an exterior ring with zero or more interior rings (holes).
// Use [NewPolygon] to get closed rings.
type Polygon[T Scalar] struct {
	Exterior  LineString[T]
	Interiors []LineString[T]
}

// NewPolygon builds a polygon, closing the exterior and every interior.
func NewPolygon[T Scalar](exterior LineString[T], interiors ...LineString[T]) Polygon[T] {
	p := Polygon[T]{Exterior: closeRing(exterior)}
	if len(interiors) > 0 {
		p.Interiors = make([]LineString[T], len(interiors))
		for i, ring := range interiors {
			p.Interiors[i] = closeRing(ring)
		}
	}
	return p
}

// Rings returns the exterior followed by the interiors.
func (p Polygon[T]) Rings() []LineString[T] {
	rings := make([]LineString[T], 0, 1+len(p.Interiors))
	rings = append(rings, p.Exterior)
	return append(rings, p.Interiors...)
}

func closeRing[T Scalar](ring LineString[T]) LineString[T] {
	if len(ring) == 0 || ring.IsClosed() {
		return ring
	}
	closed := make(LineString[T], len(ring), len(ring)+1)
	copy(closed, ring)
	return append(closed, ring[0])
}

// Rect is an axis-aligned rectangle. [NewRect] orders Min and Max.
type Rect[T Scalar] struct {
	Min, Max Coord[T]
}

// NewRect builds a rectangle from any two opposite corners.
func NewRect[T Scalar](a, b Coord[T]) Rect[T] {
	return Rect[T]{
		Min: Coord[T]{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		Max: Coord[T]{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

// ToPolygon returns the rectangle as a closed four-corner polygon.
func (r Rect[T]) ToPolygon() Polygon[T] {
	return NewPolygon(LineString[T]{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Min.X, Y: r.Max.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Max.X, Y: r.Min.Y},
	})
}

// Triangle is three vertices.
type Triangle[T Scalar] [3]Coord[T]

// ToPolygon returns the triangle as a closed three-corner polygon.
func (t Triangle[T]) ToPolygon() Polygon[T] {
	return NewPolygon(LineString[T]{t[0], t[1], t[2]})
}

// MultiPoint is an ordered set of points.
type MultiPoint[T Scalar] []Point[T]

// MultiLineString is an ordered set of line strings.
type MultiLineString[T Scalar] []LineString[T]

// MultiPolygon is an ordered set of polygons.
type MultiPolygon[T Scalar] []Polygon[T]

// GeometryCollection is an ordered set of arbitrary geometries, including
// nested collections.
type GeometryCollection[T Scalar] []Geometry[T]

func (Point[T]) Kind() string              { return "Point" }
func (Line[T]) Kind() string               { return "Line" }
func (LineString[T]) Kind() string         { return "LineString" }
func (Polygon[T]) Kind() string            { return "Polygon" }
func (Rect[T]) Kind() string               { return "Rect" }
func (Triangle[T]) Kind() string           { return "Triangle" }
func (MultiPoint[T]) Kind() string         { return "MultiPoint" }
func (MultiLineString[T]) Kind() string    { return "MultiLineString" }
func (MultiPolygon[T]) Kind() string       { return "MultiPolygon" }
func (GeometryCollection[T]) Kind() string { return "GeometryCollection" }

func (Point[T]) geometry() (_ T)              { return }
func (Line[T]) geometry() (_ T)               { return }
func (LineString[T]) geometry() (_ T)         { return }
func (Polygon[T]) geometry() (_ T)            { return }
func (Rect[T]) geometry() (_ T)               { return }
func (Triangle[T]) geometry() (_ T)           { return }
func (MultiPoint[T]) geometry() (_ T)         { return }
func (MultiLineString[T]) geometry() (_ T)    { return }
func (MultiPolygon[T]) geometry() (_ T)       { return }
func (GeometryCollection[T]) geometry() (_ T) { return }
