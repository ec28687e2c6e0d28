// Package geo defines the geometry values rendered by package svg.
//
// The variant set is closed: [Point], [Line], [LineString], [Polygon], [Rect],
// [Triangle], [MultiPoint], [MultiLineString], [MultiPolygon] and
// [GeometryCollection] all implement [Geometry], and no other type can.
// Every variant is generic over a [Scalar] coordinate type so that integer
// and floating-point inputs share one implementation.
//
// Values are plain data. Nothing in this package or in svg mutates a
// geometry after construction, so geometries may be shared freely between
// goroutines.
//
// # Rings
//
// [NewPolygon] closes every ring it is given: if the last vertex differs
// from the first, the first vertex is appended. [Rect.ToPolygon] and
// [Triangle.ToPolygon] build on it, so the degenerate shapes produce the
// same closed rings as a hand-built polygon.
package geo
