// Package style holds the presentation settings consumed by package svg.
//
// A [Style] is a plain value. Builder methods such as [Style.WithRadius]
// return a modified copy and never touch the receiver, so one style can be
// shared across goroutines and derived from freely:
//
//	base := style.Default().WithStroke(style.Named("black"))
//	poi := base.WithPointType(style.PointPoi).WithText("Museum")
//
// # Attributes
//
// [Style.Attrs] renders the generic visual attributes (opacity, fill,
// stroke and their opacities) as a string that can be spliced into an SVG
// element's attribute list. Every attribute carries its own leading space.
// The point, text, identifier and icon fields are not part of that string;
// the renderers in package svg read them directly.
//
// # Absent fields
//
// Optional numbers are pointers and optional strings are empty when unset.
// Package svg applies the documented fallbacks (stroke width 1, a 60x60 icon
// in a 0 0 100 100 view box).
package style
