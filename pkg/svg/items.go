package svg

import (
	"github.com/matzehuels/geosvg/pkg/geo"
	"github.com/matzehuels/geosvg/pkg/style"
)

// Renderable is anything that can be drawn and bounded under a style.
type Renderable interface {
	SVG(s style.Style) string
	ViewBox(s style.Style) ViewBox
}

type geometry[T geo.Scalar] struct {
	g geo.Geometry[T]
}

func (r geometry[T]) SVG(s style.Style) string      { return Render(r.g, s) }
func (r geometry[T]) ViewBox(s style.Style) ViewBox { return Bound(r.g, s) }

// Of adapts a geometry to Renderable.
func Of[T geo.Scalar](g geo.Geometry[T]) Renderable {
	return geometry[T]{g: g}
}

type coord[T geo.Scalar] geo.Coord[T]

func (c coord[T]) SVG(s style.Style) string      { return RenderCoord(geo.Coord[T](c), s) }
func (c coord[T]) ViewBox(s style.Style) ViewBox { return BoundCoord(geo.Coord[T](c), s) }

// OfCoord adapts a bare coordinate to Renderable; it draws as a point.
func OfCoord[T geo.Scalar](c geo.Coord[T]) Renderable {
	return coord[T](c)
}

// Items is an ordered, possibly heterogeneous sequence of renderables.
type Items []Renderable

// SVG concatenates the member renders in order.
func (it Items) SVG(s style.Style) string {
	return concatMembers(it, s, Renderable.SVG)
}

// ViewBox folds the member bounds.
func (it Items) ViewBox(s style.Style) ViewBox {
	return foldBounds(it, func(r Renderable) ViewBox { return r.ViewBox(s) })
}

// Collect adapts a slice of one geometry variant to Items.
func Collect[T geo.Scalar, G geo.Geometry[T]](gs []G) Items {
	items := make(Items, len(gs))
	for i, g := range gs {
		items[i] = Of[T](g)
	}
	return items
}
