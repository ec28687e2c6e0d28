package io

import (
	"encoding/json"
	"fmt"

	errs "github.com/matzehuels/geosvg/pkg/errors"
	"github.com/matzehuels/geosvg/pkg/geo"
)

// maxDepth bounds GeometryCollection nesting in untrusted input.
const maxDepth = 32

type object struct {
	Type        string            `json:"type"`
	Coordinates json.RawMessage   `json:"coordinates"`
	Geometries  []json.RawMessage `json:"geometries"`
	Geometry    json.RawMessage   `json:"geometry"`
	Features    []json.RawMessage `json:"features"`
}

type (
	position     []float64
	positions    []position
	rings        []positions
	polygonsJSON []rings
)

// DecodeGeoJSON parses a GeoJSON document. Features and feature
// collections are flattened into the returned collection; a top-level
// GeometryCollection is returned as is.
func DecodeGeoJSON(data []byte) (geo.GeometryCollection[float64], error) {
	var obj object
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode geojson")
	}

	switch obj.Type {
	case "FeatureCollection":
		gc := make(geo.GeometryCollection[float64], 0, len(obj.Features))
		for i, raw := range obj.Features {
			g, err := decodeFeature(raw)
			if err != nil {
				return nil, fmt.Errorf("feature %d: %w", i, err)
			}
			if g != nil {
				gc = append(gc, g)
			}
		}
		return gc, nil
	case "Feature":
		g, err := decodeGeometryRaw(obj.Geometry, 0)
		if err != nil {
			return nil, err
		}
		if g == nil {
			return geo.GeometryCollection[float64]{}, nil
		}
		return geo.GeometryCollection[float64]{g}, nil
	case "GeometryCollection":
		return decodeCollection(obj, 0)
	}

	g, err := decodeGeometry(obj, 0)
	if err != nil {
		return nil, err
	}
	return geo.GeometryCollection[float64]{g}, nil
}

func decodeFeature(raw json.RawMessage) (geo.Geometry[float64], error) {
	var obj object
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode feature")
	}
	if obj.Type != "Feature" {
		return nil, errs.New(errs.ErrCodeInvalidFormat, "expected Feature, got %q", obj.Type)
	}
	return decodeGeometryRaw(obj.Geometry, 0)
}

// decodeGeometryRaw returns nil for an absent or null geometry.
func decodeGeometryRaw(raw json.RawMessage, depth int) (geo.Geometry[float64], error) {
	if isNull(raw) {
		return nil, nil
	}
	var obj object
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode geometry")
	}
	return decodeGeometry(obj, depth)
}

func decodeGeometry(obj object, depth int) (geo.Geometry[float64], error) {
	switch obj.Type {
	case "Point":
		var p position
		if err := unmarshalCoords(obj, &p); err != nil {
			return nil, err
		}
		c, err := toCoord(p)
		if err != nil {
			return nil, err
		}
		return geo.Point[float64]{Coord: c}, nil

	case "MultiPoint":
		var ps positions
		if err := unmarshalCoords(obj, &ps); err != nil {
			return nil, err
		}
		cs, err := toCoords(ps)
		if err != nil {
			return nil, err
		}
		mp := make(geo.MultiPoint[float64], len(cs))
		for i, c := range cs {
			mp[i] = geo.Point[float64]{Coord: c}
		}
		return mp, nil

	case "LineString":
		var ps positions
		if err := unmarshalCoords(obj, &ps); err != nil {
			return nil, err
		}
		return toLineString(ps)

	case "MultiLineString":
		var lines rings
		if err := unmarshalCoords(obj, &lines); err != nil {
			return nil, err
		}
		mls := make(geo.MultiLineString[float64], 0, len(lines))
		for _, ps := range lines {
			ls, err := toLineString(ps)
			if err != nil {
				return nil, err
			}
			mls = append(mls, ls)
		}
		return mls, nil

	case "Polygon":
		var rs rings
		if err := unmarshalCoords(obj, &rs); err != nil {
			return nil, err
		}
		return toPolygon(rs)

	case "MultiPolygon":
		var polys polygonsJSON
		if err := unmarshalCoords(obj, &polys); err != nil {
			return nil, err
		}
		mp := make(geo.MultiPolygon[float64], 0, len(polys))
		for _, rs := range polys {
			p, err := toPolygon(rs)
			if err != nil {
				return nil, err
			}
			mp = append(mp, p)
		}
		return mp, nil

	case "GeometryCollection":
		return decodeCollection(obj, depth+1)

	case "":
		return nil, errs.New(errs.ErrCodeInvalidFormat, "geojson object has no type")
	}
	return nil, errs.New(errs.ErrCodeUnsupported, "unsupported geojson type %q", obj.Type)
}

func decodeCollection(obj object, depth int) (geo.GeometryCollection[float64], error) {
	if depth > maxDepth {
		return nil, errs.New(errs.ErrCodeInvalidGeometry, "geometry collections nested deeper than %d", maxDepth)
	}
	gc := make(geo.GeometryCollection[float64], 0, len(obj.Geometries))
	for _, raw := range obj.Geometries {
		g, err := decodeGeometryRaw(raw, depth)
		if err != nil {
			return nil, err
		}
		if g != nil {
			gc = append(gc, g)
		}
	}
	return gc, nil
}

func unmarshalCoords(obj object, v any) error {
	if isNull(obj.Coordinates) {
		if obj.Type == "Point" {
			return errs.New(errs.ErrCodeInvalidGeometry, "Point has no coordinates")
		}
		return nil
	}
	if err := json.Unmarshal(obj.Coordinates, v); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidGeometry, err, "decode %s coordinates", obj.Type)
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

func toCoord(p position) (geo.Coord[float64], error) {
	if len(p) < 2 {
		return geo.Coord[float64]{}, errs.New(errs.ErrCodeInvalidGeometry, "position needs at least 2 numbers, got %d", len(p))
	}
	return geo.C(p[0], p[1]), nil
}

func toCoords(ps positions) ([]geo.Coord[float64], error) {
	cs := make([]geo.Coord[float64], len(ps))
	for i, p := range ps {
		c, err := toCoord(p)
		if err != nil {
			return nil, err
		}
		cs[i] = c
	}
	return cs, nil
}

func toLineString(ps positions) (geo.LineString[float64], error) {
	if len(ps) == 1 {
		return nil, errs.New(errs.ErrCodeInvalidGeometry, "LineString needs at least 2 positions")
	}
	cs, err := toCoords(ps)
	if err != nil {
		return nil, err
	}
	return geo.LineString[float64](cs), nil
}

func toPolygon(rs rings) (geo.Polygon[float64], error) {
	if len(rs) == 0 {
		return geo.Polygon[float64]{}, nil
	}
	lss := make([]geo.LineString[float64], len(rs))
	for i, ps := range rs {
		if len(ps) < 3 {
			return geo.Polygon[float64]{}, errs.New(errs.ErrCodeInvalidGeometry, "polygon ring %d has %d positions, need at least 3", i, len(ps))
		}
		cs, err := toCoords(ps)
		if err != nil {
			return geo.Polygon[float64]{}, err
		}
		lss[i] = cs
	}
	return geo.NewPolygon(lss[0], lss[1:]...), nil
}
