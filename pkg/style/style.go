package style

import (
	"strconv"
	"strings"
)

// IconViewBox is the inner coordinate system of a point-of-interest icon.
type IconViewBox struct {
	MinX   int `toml:"min_x" json:"min_x"`
	MinY   int `toml:"min_y" json:"min_y"`
	Width  int `toml:"width" json:"width"`
	Height int `toml:"height" json:"height"`
}

// IconSize is the on-canvas size of a point-of-interest icon.
type IconSize struct {
	Width  int `toml:"width" json:"width"`
	Height int `toml:"height" json:"height"`
}

// Style configures how geometries are drawn.
type Style struct {
	Opacity       *float64 `toml:"opacity" json:"opacity,omitempty"`
	Fill          Color    `toml:"fill" json:"fill,omitzero"`
	FillOpacity   *float64 `toml:"fill_opacity" json:"fill_opacity,omitempty"`
	StrokeColor   Color    `toml:"stroke" json:"stroke,omitzero"`
	StrokeWidth   *float64 `toml:"stroke_width" json:"stroke_width,omitempty"`
	StrokeOpacity *float64 `toml:"stroke_opacity" json:"stroke_opacity,omitempty"`

	// Radius of circle points. Also pads point bounds.
	Radius float64 `toml:"radius" json:"radius,omitempty"`

	PointType PointType `toml:"point_type" json:"point_type,omitzero"`

	// Text labels Text and Poi points and, together with ID, line strings.
	Text            string `toml:"text" json:"text,omitempty"`
	TextClasses     string `toml:"text_classes" json:"text_classes,omitempty"`
	TextStartOffset string `toml:"text_start_offset" json:"text_start_offset,omitempty"`

	// ID identifies the rendered path so text can follow it.
	ID string `toml:"id" json:"id,omitempty"`

	IconViewBox *IconViewBox `toml:"icon_viewbox" json:"icon_viewbox,omitempty"`
	IconSize    *IconSize    `toml:"icon_size" json:"icon_size,omitempty"`
	IconPath    string       `toml:"icon_path" json:"icon_path,omitempty"`
}

// Default returns the zero style: no paint attributes, radius 0, no point mode.
func Default() Style { return Style{} }

// Attrs renders the generic visual attributes. Each attribute is preceded
// by a single space; an empty style renders as "".
func (s Style) Attrs() string {
	var b strings.Builder
	writeNumber(&b, "opacity", s.Opacity)
	writeColor(&b, "fill", s.Fill)
	writeNumber(&b, "fill-opacity", s.FillOpacity)
	writeColor(&b, "stroke", s.StrokeColor)
	writeNumber(&b, "stroke-width", s.StrokeWidth)
	writeNumber(&b, "stroke-opacity", s.StrokeOpacity)
	return b.String()
}

// String is Attrs.
func (s Style) String() string { return s.Attrs() }

func writeNumber(b *strings.Builder, name string, v *float64) {
	if v == nil {
		return
	}
	b.WriteString(" " + name + `="` + strconv.FormatFloat(*v, 'f', -1, 64) + `"`)
}

func writeColor(b *strings.Builder, name string, c Color) {
	if c.IsZero() {
		return
	}
	b.WriteString(" " + name + `="` + EscapeAttr(c.String()) + `"`)
}

// EscapeAttr escapes s for use inside a double-quoted attribute value.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")

func ptr(v float64) *float64 { return &v }

func (s Style) WithOpacity(v float64) Style       { s.Opacity = ptr(v); return s }
func (s Style) WithFill(c Color) Style            { s.Fill = c; return s }
func (s Style) WithFillOpacity(v float64) Style   { s.FillOpacity = ptr(v); return s }
func (s Style) WithStroke(c Color) Style          { s.StrokeColor = c; return s }
func (s Style) WithStrokeWidth(v float64) Style   { s.StrokeWidth = ptr(v); return s }
func (s Style) WithStrokeOpacity(v float64) Style { s.StrokeOpacity = ptr(v); return s }
func (s Style) WithRadius(r float64) Style        { s.Radius = r; return s }
func (s Style) WithPointType(p PointType) Style   { s.PointType = p; return s }
func (s Style) WithText(text string) Style        { s.Text = text; return s }
func (s Style) WithTextClasses(c string) Style    { s.TextClasses = c; return s }
func (s Style) WithTextStartOffset(o string) Style {
	s.TextStartOffset = o
	return s
}
func (s Style) WithID(id string) Style { s.ID = id; return s }

// WithIcon configures point-of-interest rendering. Nil viewBox or size
// leaves the defaults in place.
func (s Style) WithIcon(path string, viewBox *IconViewBox, size *IconSize) Style {
	s.IconPath = path
	s.IconViewBox = viewBox
	s.IconSize = size
	return s
}

// Merge returns s with every field that is set in o copied over it.
func (s Style) Merge(o Style) Style {
	if o.Opacity != nil {
		s.Opacity = o.Opacity
	}
	if !o.Fill.IsZero() {
		s.Fill = o.Fill
	}
	if o.FillOpacity != nil {
		s.FillOpacity = o.FillOpacity
	}
	if !o.StrokeColor.IsZero() {
		s.StrokeColor = o.StrokeColor
	}
	if o.StrokeWidth != nil {
		s.StrokeWidth = o.StrokeWidth
	}
	if o.StrokeOpacity != nil {
		s.StrokeOpacity = o.StrokeOpacity
	}
	if o.Radius != 0 {
		s.Radius = o.Radius
	}
	if o.PointType != PointTypeNone {
		s.PointType = o.PointType
	}
	if o.Text != "" {
		s.Text = o.Text
	}
	if o.TextClasses != "" {
		s.TextClasses = o.TextClasses
	}
	if o.TextStartOffset != "" {
		s.TextStartOffset = o.TextStartOffset
	}
	if o.ID != "" {
		s.ID = o.ID
	}
	if o.IconViewBox != nil {
		s.IconViewBox = o.IconViewBox
	}
	if o.IconSize != nil {
		s.IconSize = o.IconSize
	}
	if o.IconPath != "" {
		s.IconPath = o.IconPath
	}
	return s
}
