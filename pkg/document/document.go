package document

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/geosvg/pkg/style"
	"github.com/matzehuels/geosvg/pkg/svg"
)

const (
	xmlnsSVG   = "http://www.w3.org/2000/svg"
	xmlnsXLink = "http://www.w3.org/1999/xlink"
)

// Option configures an [Svg] at construction.
type Option func(*Svg)

// WithMargin sets the padding added around the union bound.
func WithMargin(m float64) Option { return func(d *Svg) { d.margin = m } }

// WithStylesheet embeds css in a <style> element ahead of the layers. The
// text is wrapped in CDATA, so it can neither close the element nor inject
// markup.
// Text classes set on styles refer to rules defined here.
func WithStylesheet(css string) Option { return func(d *Svg) { d.css = css } }

// WithBackground fills the whole view box with c before drawing layers.
func WithBackground(c style.Color) Option { return func(d *Svg) { d.background = c } }

// Layer is one renderable drawn with its own style.
type Layer struct {
	Item  svg.Renderable
	Style style.Style
}

// Svg is an ordered stack of styled layers.
type Svg struct {
	layers     []Layer
	margin     float64
	css        string
	background style.Color
}

// New starts a document with a single layer.
func New(r svg.Renderable, s style.Style, opts ...Option) *Svg {
	d := &Svg{}
	for _, opt := range opts {
		opt(d)
	}
	return d.And(r, s)
}

// And appends a layer and returns d for chaining. A nil renderable is
// ignored.
func (d *Svg) And(r svg.Renderable, s style.Style) *Svg {
	if r != nil {
		d.layers = append(d.layers, Layer{Item: r, Style: s})
	}
	return d
}

// Margin sets the padding around the union bound and returns d.
func (d *Svg) Margin(m float64) *Svg {
	d.margin = m
	return d
}

// Layers returns the layers in drawing order.
func (d *Svg) Layers() []Layer { return d.layers }

// ViewBox is the union of the layer bounds grown by the margin. A document
// with nothing to bound has the empty view box.
func (d *Svg) ViewBox() svg.ViewBox {
	vb := svg.EmptyViewBox()
	for _, l := range d.layers {
		vb = vb.Add(l.Item.ViewBox(l.Style))
	}
	return vb.Expand(d.margin)
}

// Body returns the concatenated layer fragments without the outer element.
func (d *Svg) Body() string {
	var buf bytes.Buffer
	for _, l := range d.layers {
		buf.WriteString(l.Item.SVG(l.Style))
	}
	return buf.String()
}

// Render returns the complete document.
func (d *Svg) Render() []byte {
	vb := d.ViewBox()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="%s" xmlns:xlink="%s" viewBox="%s" width="%s" height="%s">`+"\n",
		xmlnsSVG, xmlnsXLink, vb, formatSize(vb.Width()), formatSize(vb.Height()))

	if d.css != "" {
		fmt.Fprintf(&buf, "  <style><![CDATA[\n%s\n]]></style>\n", cdata(d.css))
	}
	if !d.background.IsZero() && !vb.IsEmpty() {
		fmt.Fprintf(&buf, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
			formatSize(vb.MinX), formatSize(vb.MinY), formatSize(vb.Width()), formatSize(vb.Height()),
			style.EscapeAttr(d.background.String()))
	}
	for _, l := range d.layers {
		if frag := l.Item.SVG(l.Style); frag != "" {
			buf.WriteString("  " + frag + "\n")
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// String is Render as a string.
func (d *Svg) String() string { return string(d.Render()) }

// WriteTo writes the rendered document to w.
func (d *Svg) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.Render())
	return int64(n), err
}

// cdata splits every "]]>" so css stays inside one character data run.
func cdata(css string) string {
	return strings.ReplaceAll(css, "]]>", "]]]]><![CDATA[>")
}

func formatSize(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
