// Package svg renders geometries as SVG markup fragments and computes the
// view box each fragment occupies.
//
// Every operation comes in a pair: a render function that returns markup
// and a bound function that returns a [ViewBox]. [Render] and [Bound]
// dispatch over the closed [geo.Geometry] union; the per-variant functions
// ([RenderPoint], [BoundLineString], ...) are exported for callers that
// already hold a concrete type.
//
// # Fragments
//
// Output is a fragment, never a document: there is no <svg> root and no
// XML prolog. Composite geometries render as the concatenation of their
// members in input order, with no separator. Package document wraps
// fragments into a standalone file.
//
// # Bounds
//
// A [ViewBox] is padded by the style: points by Radius plus stroke width,
// segments by stroke width alone. Composite bounds are a left fold of
// [ViewBox.Add] seeded with [EmptyViewBox], which is the identity of Add.
//
// Point bounds ignore the point mode. Text and Poi points are bounded as if
// they were circles even though their markup can extend further.
//
// # Numbers
//
// Coordinates are written as in their source type: integers as integers,
// floats always with a fractional part ("0.0", "-30.0"). Non-finite values
// are coerced to 0 wherever a coordinate must become a float64 ([ToFloat]);
// a bad coordinate never aborts rendering of its siblings.
//
// All functions are pure and safe for concurrent use.
package svg
