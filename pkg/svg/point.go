package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/geosvg/pkg/geo"
	"github.com/matzehuels/geosvg/pkg/style"
)

// Fallbacks for unset style fields.
const (
	DefaultStrokeWidth = 1.0
)

var (
	DefaultIconViewBox = style.IconViewBox{MinX: 0, MinY: 0, Width: 100, Height: 100}
	DefaultIconSize    = style.IconSize{Width: 60, Height: 60}
)

// Offsets of a Poi label from the icon center.
const (
	poiLabelDX = 15.0
	poiLabelDY = -45.0
)

// RenderPoint renders p according to s.PointType.
func RenderPoint[T geo.Scalar](p geo.Point[T], s style.Style) string {
	return RenderCoord(p.Coord, s)
}

// RenderCoord renders c exactly as the equivalent point.
func RenderCoord[T geo.Scalar](c geo.Coord[T], s style.Style) string {
	switch s.PointType {
	case style.PointText:
		return fmt.Sprintf(`<text class="%s" x="%s" y="%s"%s>%s</text>`,
			style.EscapeAttr(s.TextClasses), FormatCoord(c.X), FormatCoord(c.Y), s.Attrs(), escapeText(s.Text))
	case style.PointPoi:
		return renderPoi(decimalFloat(c.X), decimalFloat(c.Y), s)
	case style.PointCircle, style.PointSymbol:
		return fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s"%s/>`,
			FormatCoord(c.X), FormatCoord(c.Y), formatNumber(s.Radius), s.Attrs())
	default:
		return fmt.Sprintf(`<circle data-point-type="none" cx="%s" cy="%s" r="%s"%s/>`,
			FormatCoord(c.X), FormatCoord(c.Y), formatNumber(s.Radius), s.Attrs())
	}
}

// renderPoi centers the icon on (x, y) and places the optional label to
// its lower right.
func renderPoi(x, y float64, s style.Style) string {
	vb := DefaultIconViewBox
	if s.IconViewBox != nil {
		vb = *s.IconViewBox
	}
	size := DefaultIconSize
	if s.IconSize != nil {
		size = *s.IconSize
	}
	w, h := float64(size.Width), float64(size.Height)

	var label string
	if s.Text != "" {
		label = fmt.Sprintf(`<text x="%s" y="%s">%s</text>`,
			formatFloat(x+w/2+poiLabelDX), formatFloat(y+h+poiLabelDY), escapeText(s.Text))
	}

	return fmt.Sprintf(`<svg x="%s" y="%s" width="%d" height="%d" viewBox="%d %d %d %d"%s>%s</svg>%s`,
		formatFloat(x-w/2), formatFloat(y-h/2), size.Width, size.Height,
		vb.MinX, vb.MinY, vb.Width, vb.Height, s.Attrs(), s.IconPath, label)
}

// BoundPoint returns the square around p padded by the radius plus the
// stroke width. The point mode is ignored.
func BoundPoint[T geo.Scalar](p geo.Point[T], s style.Style) ViewBox {
	return BoundCoord(p.Coord, s)
}

// BoundCoord bounds c exactly as the equivalent point.
func BoundCoord[T geo.Scalar](c geo.Coord[T], s style.Style) ViewBox {
	pad := s.Radius + strokeWidth(s)
	x, y := ToFloat(c.X), ToFloat(c.Y)
	return ViewBox{MinX: x - pad, MinY: y - pad, MaxX: x + pad, MaxY: y + pad}
}

// RenderMultiPoint concatenates the point renders in order.
func RenderMultiPoint[T geo.Scalar](mp geo.MultiPoint[T], s style.Style) string {
	return concat(mp, func(p geo.Point[T]) string { return RenderPoint(p, s) })
}

// BoundMultiPoint folds the point bounds.
func BoundMultiPoint[T geo.Scalar](mp geo.MultiPoint[T], s style.Style) ViewBox {
	return foldBounds(mp, func(p geo.Point[T]) ViewBox { return BoundPoint(p, s) })
}

func strokeWidth(s style.Style) float64 {
	if s.StrokeWidth == nil {
		return DefaultStrokeWidth
	}
	return *s.StrokeWidth
}

func escapeText(s string) string {
	if s == "" {
		return ""
	}
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
