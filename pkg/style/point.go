package style

import (
	"fmt"
	"strings"
)

// PointType selects how a single point is drawn.
type PointType int

const (
	// PointTypeNone draws a circle tagged as having no explicit mode.
	PointTypeNone PointType = iota
	PointCircle
	PointSymbol
	PointText
	// PointPoi draws an embedded icon with an optional label.
	PointPoi
)

var pointTypeNames = map[PointType]string{
	PointTypeNone: "none",
	PointCircle:   "circle",
	PointSymbol:   "symbol",
	PointText:     "text",
	PointPoi:      "poi",
}

func (p PointType) String() string {
	if name, ok := pointTypeNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PointType(%d)", int(p))
}

// ParsePointType parses a mode name. The empty string is PointTypeNone.
func ParsePointType(s string) (PointType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PointTypeNone, nil
	}
	for p, name := range pointTypeNames {
		if name == s {
			return p, nil
		}
	}
	return PointTypeNone, fmt.Errorf("invalid point type: %s (must be 'circle', 'symbol', 'text' or 'poi')", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p PointType) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PointType) UnmarshalText(text []byte) error {
	parsed, err := ParsePointType(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
