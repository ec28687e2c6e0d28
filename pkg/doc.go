// Package pkg provides the libraries behind geosvg, a renderer for planar
// geometries as standalone SVG documents.
//
// # Overview
//
// The pkg directory is organized into four areas:
//
//  1. Geometry and rendering: [geo], [style], [svg], [document]
//  2. Input: [io] (GeoJSON and WKT decoding), [fetch] (remote inputs)
//  3. Orchestration: [pipeline] (decode, render, document), [config]
//  4. Infrastructure: [cache], [errors], [observability], [buildinfo]
//
// # Architecture
//
// The data flow of a render:
//
//	GeoJSON / WKT (file, URL, stdin, HTTP body)
//	         ↓
//	    [io] package (decode to a GeometryCollection)
//	         ↓
//	    [svg] package (per-geometry fragment and styled view box)
//	         ↓
//	    [document] package (layers, margin, outer <svg> element)
//	         ↓
//	    SVG document
//
// [pipeline.Runner] drives these stages and caches finished documents.
//
// # Quick Start
//
// Render a WKT line string with a red stroke:
//
//	import (
//	    "os"
//
//	    "github.com/matzehuels/geosvg/pkg/document"
//	    gio "github.com/matzehuels/geosvg/pkg/io"
//	    "github.com/matzehuels/geosvg/pkg/style"
//	    "github.com/matzehuels/geosvg/pkg/svg"
//	)
//
//	gc, _ := gio.Decode([]byte("LINESTRING (0 0, 10 10)"), gio.FormatWKT)
//	s := style.Style{}.WithStroke(style.Named("red")).WithStrokeWidth(2)
//
//	doc := document.New(svg.Of(gc), s, document.WithMargin(5))
//	doc.WriteTo(os.Stdout)
//
// With caching and validation, go through the pipeline instead:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	res, err := runner.Render(ctx, pipeline.Request{Input: wkt, Style: s})
//
// # Generic Coordinates
//
// Geometry types are generic over [geo.Scalar], so integer grids and
// float coordinates share one implementation. Decoders produce float64.
//
// [geo]: github.com/matzehuels/geosvg/pkg/geo
// [style]: github.com/matzehuels/geosvg/pkg/style
// [svg]: github.com/matzehuels/geosvg/pkg/svg
// [document]: github.com/matzehuels/geosvg/pkg/document
// [io]: github.com/matzehuels/geosvg/pkg/io
// [fetch]: github.com/matzehuels/geosvg/pkg/fetch
// [pipeline]: github.com/matzehuels/geosvg/pkg/pipeline
// [pipeline.Runner]: github.com/matzehuels/geosvg/pkg/pipeline#Runner
// [config]: github.com/matzehuels/geosvg/pkg/config
// [cache]: github.com/matzehuels/geosvg/pkg/cache
// [errors]: github.com/matzehuels/geosvg/pkg/errors
// [observability]: github.com/matzehuels/geosvg/pkg/observability
// [buildinfo]: github.com/matzehuels/geosvg/pkg/buildinfo
// [geo.Scalar]: github.com/matzehuels/geosvg/pkg/geo#Scalar
package pkg
