// Package io decodes geometry text into geo.GeometryCollection[float64] and
// encodes collections back to GeoJSON.
//
// # Formats
//
// Two input formats are supported:
//
//   - GeoJSON (RFC 7946): Point, MultiPoint, LineString, MultiLineString,
//     Polygon, MultiPolygon, GeometryCollection, Feature and
//     FeatureCollection. Features contribute their geometry; properties are
//     ignored. Null geometries are skipped.
//   - WKT: POINT, LINESTRING, POLYGON, TRIANGLE, MULTIPOINT,
//     MULTILINESTRING, MULTIPOLYGON and GEOMETRYCOLLECTION, including EMPTY
//     and Z/M/ZM variants (extra ordinates are dropped). A document may hold
//     several WKT geometries separated by whitespace or semicolons.
//
// Both decoders return a single top-level collection so callers can hand
// the result straight to svg.Render. Polygon rings are closed on decode.
//
// # Import
//
// Use [Import] to read a file, choosing the format from its extension, or
// [Read] with an explicit [Format] for any io.Reader:
//
//	gc, err := io.Import("parcels.geojson")
//	gc, err := io.Read(os.Stdin, io.FormatWKT)
//
// Decoding failures carry INVALID_FORMAT, INVALID_GEOMETRY or UNSUPPORTED
// codes from the errors package.
//
// # Export
//
// [WriteGeoJSON] writes a collection as a GeoJSON GeometryCollection. Rects
// and triangles are written as polygons and Lines as two-point line strings.
package io
