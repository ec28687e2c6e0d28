package svg

import (
	"fmt"
	"strings"

	"github.com/matzehuels/geosvg/pkg/geo"
	"github.com/matzehuels/geosvg/pkg/style"
)

// RenderPolygon renders the exterior and then every hole as closed
// subpaths of a single even-odd path.
func RenderPolygon[T geo.Scalar](p geo.Polygon[T], s style.Style) string {
	var d strings.Builder
	for _, ring := range p.Rings() {
		if len(ring) == 0 {
			continue
		}
		if d.Len() > 0 {
			d.WriteByte(' ')
		}
		d.WriteString("M " + FormatCoord(ring[0].X) + " " + FormatCoord(ring[0].Y))
		for _, c := range ring[1:] {
			d.WriteString(" L " + FormatCoord(c.X) + " " + FormatCoord(c.Y))
		}
		d.WriteString(" Z")
	}
	return fmt.Sprintf(`<path fill-rule="evenodd" d="%s"%s/>`, d.String(), s.Attrs())
}

// BoundPolygon folds the segment bounds of every ring, holes included.
func BoundPolygon[T geo.Scalar](p geo.Polygon[T], s style.Style) ViewBox {
	return foldBounds(p.Rings(), func(ring geo.LineString[T]) ViewBox { return BoundLineString(ring, s) })
}

// RenderRect renders r as its four-corner polygon.
func RenderRect[T geo.Scalar](r geo.Rect[T], s style.Style) string {
	return RenderPolygon(r.ToPolygon(), s)
}

// BoundRect bounds r as its four-corner polygon.
func BoundRect[T geo.Scalar](r geo.Rect[T], s style.Style) ViewBox {
	return BoundPolygon(r.ToPolygon(), s)
}

// RenderTriangle renders t as its three-corner polygon.
func RenderTriangle[T geo.Scalar](t geo.Triangle[T], s style.Style) string {
	return RenderPolygon(t.ToPolygon(), s)
}

// BoundTriangle bounds t as its three-corner polygon.
func BoundTriangle[T geo.Scalar](t geo.Triangle[T], s style.Style) ViewBox {
	return BoundPolygon(t.ToPolygon(), s)
}

// RenderMultiPolygon concatenates the polygon renders in order.
func RenderMultiPolygon[T geo.Scalar](mp geo.MultiPolygon[T], s style.Style) string {
	return concat(mp, func(p geo.Polygon[T]) string { return RenderPolygon(p, s) })
}

// BoundMultiPolygon folds the polygon bounds.
func BoundMultiPolygon[T geo.Scalar](mp geo.MultiPolygon[T], s style.Style) ViewBox {
	return foldBounds(mp, func(p geo.Polygon[T]) ViewBox { return BoundPolygon(p, s) })
}
