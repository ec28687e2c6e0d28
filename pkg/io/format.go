package io

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	errs "github.com/matzehuels/geosvg/pkg/errors"
	"github.com/matzehuels/geosvg/pkg/geo"
)

// Format names an input encoding.
type Format string

const (
	FormatAuto    Format = ""
	FormatGeoJSON Format = "geojson"
	FormatWKT     Format = "wkt"
)

// Formats lists the explicit formats for flag help and completion.
var Formats = []Format{FormatGeoJSON, FormatWKT}

// ParseFormat accepts "geojson", "json", "wkt" or "" (auto).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "geojson", "json":
		return FormatGeoJSON, nil
	case "wkt":
		return FormatWKT, nil
	}
	return FormatAuto, errs.New(errs.ErrCodeInvalidFormat, "unknown format %q (want geojson or wkt)", s)
}

// FormatFromPath picks a format from a file extension, or FormatAuto.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		return FormatGeoJSON
	case ".wkt", ".txt":
		return FormatWKT
	}
	return FormatAuto
}

// Sniff guesses the format from content: GeoJSON starts with '{'.
func Sniff(data []byte) Format {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return FormatGeoJSON
	}
	return FormatWKT
}

// Decode parses data in the given format. FormatAuto sniffs the content.
func Decode(data []byte, f Format) (geo.GeometryCollection[float64], error) {
	if f == FormatAuto {
		f = Sniff(data)
	}
	switch f {
	case FormatGeoJSON:
		return DecodeGeoJSON(data)
	case FormatWKT:
		return ParseWKT(string(data))
	}
	return nil, errs.New(errs.ErrCodeInvalidFormat, "unknown format %q", f)
}

// Read decodes everything in r.
func Read(r io.Reader, f Format) (geo.GeometryCollection[float64], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "read input")
	}
	return Decode(data, f)
}

// Import reads a file, picking the format from its extension when it is
// recognised and from the content otherwise.
func Import(path string) (geo.GeometryCollection[float64], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "read %s", path)
	}
	return Decode(data, FormatFromPath(path))
}
