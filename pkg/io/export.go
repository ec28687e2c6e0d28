package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/geosvg/pkg/geo"
)

type geometryJSON struct {
	Type        string         `json:"type"`
	Coordinates any            `json:"coordinates,omitzero"`
	Geometries  []geometryJSON `json:"geometries,omitzero"`
}

// WriteGeoJSON encodes g as a GeoJSON geometry and writes it to w.
func WriteGeoJSON[T geo.Scalar](g geo.Geometry[T], w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toJSON(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportGeoJSON writes g to a GeoJSON file at path.
func ExportGeoJSON[T geo.Scalar](g geo.Geometry[T], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGeoJSON(g, f)
}

func toJSON[T geo.Scalar](g geo.Geometry[T]) geometryJSON {
	switch g := g.(type) {
	case geo.Point[T]:
		return geometryJSON{Type: "Point", Coordinates: pos(g.Coord)}
	case geo.Line[T]:
		return geometryJSON{Type: "LineString", Coordinates: [][]float64{pos(g.Start), pos(g.End)}}
	case geo.LineString[T]:
		return geometryJSON{Type: "LineString", Coordinates: line(g)}
	case geo.Polygon[T]:
		return geometryJSON{Type: "Polygon", Coordinates: polygon(g)}
	case geo.Rect[T]:
		return geometryJSON{Type: "Polygon", Coordinates: polygon(g.ToPolygon())}
	case geo.Triangle[T]:
		return geometryJSON{Type: "Polygon", Coordinates: polygon(g.ToPolygon())}
	case geo.MultiPoint[T]:
		out := make([][]float64, len(g))
		for i, p := range g {
			out[i] = pos(p.Coord)
		}
		return geometryJSON{Type: "MultiPoint", Coordinates: out}
	case geo.MultiLineString[T]:
		out := make([][][]float64, len(g))
		for i, ls := range g {
			out[i] = line(ls)
		}
		return geometryJSON{Type: "MultiLineString", Coordinates: out}
	case geo.MultiPolygon[T]:
		out := make([][][][]float64, len(g))
		for i, p := range g {
			out[i] = polygon(p)
		}
		return geometryJSON{Type: "MultiPolygon", Coordinates: out}
	case geo.GeometryCollection[T]:
		out := make([]geometryJSON, 0, len(g))
		for _, member := range g {
			if member != nil {
				out = append(out, toJSON(member))
			}
		}
		return geometryJSON{Type: "GeometryCollection", Geometries: out}
	}
	return geometryJSON{Type: "GeometryCollection", Geometries: []geometryJSON{}}
}

func pos[T geo.Scalar](c geo.Coord[T]) []float64 {
	return []float64{float64(c.X), float64(c.Y)}
}

func line[T geo.Scalar](ls geo.LineString[T]) [][]float64 {
	out := make([][]float64, len(ls))
	for i, c := range ls {
		out[i] = pos(c)
	}
	return out
}

func polygon[T geo.Scalar](p geo.Polygon[T]) [][][]float64 {
	out := make([][][]float64, 0, 1+len(p.Interiors))
	for _, ring := range p.Rings() {
		if len(ring) > 0 {
			out = append(out, line(ring))
		}
	}
	return out
}
