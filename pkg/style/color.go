package style

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a paint value: either a CSS color keyword or an RGB color.
// The zero Color is unset.
type Color struct {
	name string
	rgb  colorful.Color
	set  bool
}

// Named returns a CSS color keyword such as "red" or "none".
func Named(name string) Color {
	return Color{name: name, set: name != ""}
}

// RGB returns a color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{rgb: colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, set: true}
}

// HSL returns a color from hue in degrees, saturation and lightness in [0, 1].
func HSL(h, s, l float64) Color {
	return Color{rgb: colorful.Hsl(h, s, l).Clamped(), set: true}
}

// Hex parses "#rgb" or "#rrggbb".
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(expandShortHex(s))
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{rgb: c, set: true}, nil
}

// ParseColor accepts a hex color or a keyword.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return Hex(s)
	}
	if s == "" {
		return Color{}, nil
	}
	return Named(s), nil
}

func expandShortHex(s string) string {
	if len(s) != 4 || s[0] != '#' {
		return s
	}
	return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
}

// IsZero reports whether c is unset.
func (c Color) IsZero() bool { return !c.set }

// String renders c as an SVG paint value.
func (c Color) String() string {
	switch {
	case !c.set:
		return ""
	case c.name != "":
		return c.name
	default:
		return c.rgb.Hex()
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
