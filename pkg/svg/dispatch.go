package svg

import (
	"reflect"

	"github.com/matzehuels/geosvg/pkg/geo"
	"github.com/matzehuels/geosvg/pkg/style"
)

// Render returns the markup fragment for g under s. Rects and triangles
// are drawn as their polygon form; collections recurse through Render for
// every member. A nil geometry renders as "".
func Render[T geo.Scalar](g geo.Geometry[T], s style.Style) string {
	switch g := g.(type) {
	case geo.Point[T]:
		return RenderPoint(g, s)
	case geo.Line[T]:
		return RenderLine(g, s)
	case geo.LineString[T]:
		return RenderLineString(g, s)
	case geo.Polygon[T]:
		return RenderPolygon(g, s)
	case geo.Rect[T]:
		return RenderPolygon(g.ToPolygon(), s)
	case geo.Triangle[T]:
		return RenderPolygon(g.ToPolygon(), s)
	case geo.MultiPoint[T]:
		return RenderMultiPoint(g, s)
	case geo.MultiLineString[T]:
		return RenderMultiLineString(g, s)
	case geo.MultiPolygon[T]:
		return RenderMultiPolygon(g, s)
	case geo.GeometryCollection[T]:
		return RenderCollection(g, s)
	}
	if d, ok := deref(g); ok {
		return Render(d, s)
	}
	return ""
}

// Bound returns the view box Render(g, s) occupies. A nil geometry bounds
// to [EmptyViewBox].
func Bound[T geo.Scalar](g geo.Geometry[T], s style.Style) ViewBox {
	switch g := g.(type) {
	case geo.Point[T]:
		return BoundPoint(g, s)
	case geo.Line[T]:
		return BoundLine(g, s)
	case geo.LineString[T]:
		return BoundLineString(g, s)
	case geo.Polygon[T]:
		return BoundPolygon(g, s)
	case geo.Rect[T]:
		return BoundPolygon(g.ToPolygon(), s)
	case geo.Triangle[T]:
		return BoundPolygon(g.ToPolygon(), s)
	case geo.MultiPoint[T]:
		return BoundMultiPoint(g, s)
	case geo.MultiLineString[T]:
		return BoundMultiLineString(g, s)
	case geo.MultiPolygon[T]:
		return BoundMultiPolygon(g, s)
	case geo.GeometryCollection[T]:
		return BoundCollection(g, s)
	}
	if d, ok := deref(g); ok {
		return Bound(d, s)
	}
	return EmptyViewBox()
}

// RenderCollection concatenates the member renders in order.
func RenderCollection[T geo.Scalar](gc geo.GeometryCollection[T], s style.Style) string {
	return concatMembers(gc, s, Render[T])
}

// BoundCollection folds the member bounds.
func BoundCollection[T geo.Scalar](gc geo.GeometryCollection[T], s style.Style) ViewBox {
	return foldBounds(gc, func(g geo.Geometry[T]) ViewBox { return Bound(g, s) })
}

// deref unwraps a non-nil pointer to a variant. Pointers satisfy
// geo.Geometry through their value methods but are not in the switch.
func deref[T geo.Scalar](g geo.Geometry[T]) (geo.Geometry[T], bool) {
	if g == nil {
		return nil, false
	}
	rv := reflect.ValueOf(g)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, false
	}
	d, ok := rv.Elem().Interface().(geo.Geometry[T])
	return d, ok
}
