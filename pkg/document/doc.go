// Package document composes styled geometry fragments into a standalone SVG
// document.
//
// Each layer pairs a [svg.Renderable] with the style it is drawn with. The
// document's viewBox is the union of every layer's bound, grown by the
// margin:
//
//	doc := document.New(svg.Of[float64](roads), roadStyle).
//		And(svg.Of[float64](pois), poiStyle).
//		Margin(10)
//	os.WriteFile("map.svg", doc.Render(), 0o644)
//
// Layers are drawn in insertion order, so later layers paint over earlier
// ones.
package document
