package svg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/geosvg/pkg/geo"
	"github.com/matzehuels/geosvg/pkg/style"
)

// RenderLine renders a two-point open path.
func RenderLine[T geo.Scalar](l geo.Line[T], s style.Style) string {
	return fmt.Sprintf(`<path d="%s"%s/>`, segment(l), s.Attrs())
}

// BoundLine unions the endpoint bounds with the radius forced to zero, so
// only the stroke width pads a segment.
func BoundLine[T geo.Scalar](l geo.Line[T], s style.Style) ViewBox {
	s = s.WithRadius(0)
	return BoundCoord(l.Start, s).Add(BoundCoord(l.End, s))
}

func segment[T geo.Scalar](l geo.Line[T]) string {
	return "M " + FormatCoord(l.Start.X) + " " + FormatCoord(l.Start.Y) +
		" L " + FormatCoord(l.End.X) + " " + FormatCoord(l.End.Y)
}

// RenderLineString renders one move/line pair per segment. The contour is
// never closed. When the style has both Text and ID the path carries the
// ID and is followed by a text element running along it. Containers with
// more than one member number the ID per member, see [MemberStyle].
func RenderLineString[T geo.Scalar](ls geo.LineString[T], s style.Style) string {
	lines := ls.Lines()
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = segment(l)
	}

	var id, label string
	if s.ID != "" {
		id = ` id="` + style.EscapeAttr(s.ID) + `"`
		if s.Text != "" {
			label = textPath(s)
		}
	}
	return fmt.Sprintf(`<path d="%s"%s%s/>%s`, strings.Join(parts, " "), id, s.Attrs(), label)
}

func textPath(s style.Style) string {
	var offset string
	if s.TextStartOffset != "" {
		offset = ` startOffset="` + style.EscapeAttr(s.TextStartOffset) + `"`
	}
	return fmt.Sprintf(`<text class="%s"><textPath xlink:href="#%s"%s>%s</textPath></text>`,
		style.EscapeAttr(s.TextClasses), style.EscapeAttr(s.ID), offset, escapeText(s.Text))
}

// BoundLineString folds the segment bounds.
func BoundLineString[T geo.Scalar](ls geo.LineString[T], s style.Style) ViewBox {
	return foldBounds(ls.Lines(), func(l geo.Line[T]) ViewBox { return BoundLine(l, s) })
}

// RenderMultiLineString concatenates the line string renders in order.
func RenderMultiLineString[T geo.Scalar](mls geo.MultiLineString[T], s style.Style) string {
	return concatMembers(mls, s, RenderLineString[T])
}

// BoundMultiLineString folds the line string bounds.
func BoundMultiLineString[T geo.Scalar](mls geo.MultiLineString[T], s style.Style) ViewBox {
	return foldBounds(mls, func(ls geo.LineString[T]) ViewBox { return BoundLineString(ls, s) })
}

// MemberStyle is the style of member i of n. A style ID must stay unique in
// a document, so with more than one member it becomes "ID-1", "ID-2", ...
func MemberStyle(s style.Style, i, n int) style.Style {
	if s.ID == "" || n < 2 {
		return s
	}
	return s.WithID(s.ID + "-" + strconv.Itoa(i+1))
}

func concatMembers[E any](items []E, s style.Style, render func(E, style.Style) string) string {
	var b strings.Builder
	for i, item := range items {
		b.WriteString(render(item, MemberStyle(s, i, len(items))))
	}
	return b.String()
}

func concat[E any](items []E, render func(E) string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(render(item))
	}
	return b.String()
}
