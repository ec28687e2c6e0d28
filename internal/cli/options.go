package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/geosvg/pkg/config"
	errs "github.com/matzehuels/geosvg/pkg/errors"
	gio "github.com/matzehuels/geosvg/pkg/io"
	"github.com/matzehuels/geosvg/pkg/pipeline"
	"github.com/matzehuels/geosvg/pkg/style"
)

// inputOpts are the flags shared by every command that reads geometry.
type inputOpts struct {
	format  string
	noCache bool
	refresh bool
}

func (o *inputOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "input format: geojson, wkt (default: from extension or content)")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&o.refresh, "refresh", false, "ignore cached results and recompute")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(gio.Formats))
		for i, f := range gio.Formats {
			names[i] = string(f)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

// styleOpts are the style and document flags. Flags the user sets override
// the selected profile; unset flags leave it untouched.
type styleOpts struct {
	profile string

	fill          string
	stroke        string
	strokeWidth   float64
	opacity       float64
	fillOpacity   float64
	strokeOpacity float64
	radius        float64
	pointType     string
	text          string
	textClasses   string
	textOffset    string
	id            string

	margin     float64
	background string
	stylesheet string
}

func (o *styleOpts) register(cmd *cobra.Command, document bool) {
	f := cmd.Flags()
	f.StringVarP(&o.profile, "profile", "p", "", "style profile from the config file")
	f.StringVar(&o.fill, "fill", "", "fill color (SVG color keyword or #hex)")
	f.StringVar(&o.stroke, "stroke", "", "stroke color")
	f.Float64Var(&o.strokeWidth, "stroke-width", 0, "stroke width")
	f.Float64Var(&o.opacity, "opacity", 0, "element opacity in [0, 1]")
	f.Float64Var(&o.fillOpacity, "fill-opacity", 0, "fill opacity in [0, 1]")
	f.Float64Var(&o.strokeOpacity, "stroke-opacity", 0, "stroke opacity in [0, 1]")
	f.Float64VarP(&o.radius, "radius", "r", 0, "circle radius for points")
	f.StringVar(&o.pointType, "point-type", "", "point marker: circle, symbol, text, poi")
	f.StringVar(&o.text, "text", "", "label for text and poi points, or text along line strings (needs --id)")
	f.StringVar(&o.textClasses, "text-class", "", "CSS classes of the label")
	f.StringVar(&o.textOffset, "text-offset", "", "startOffset of text along a path")
	f.StringVar(&o.id, "id", "", "element id, referenced by text along a path")

	_ = cmd.RegisterFlagCompletionFunc("point-type", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"circle", "symbol", "text", "poi"}, cobra.ShellCompDirectiveNoFileComp
	})

	if document {
		f.Float64VarP(&o.margin, "margin", "m", 0, "padding around the geometry bounds")
		f.StringVar(&o.background, "background", "", "background color")
		f.StringVar(&o.stylesheet, "stylesheet", "", "CSS file embedded in the document")
	}
}

// apply resolves the profile from cfg and overlays the flags the user set.
func (o *styleOpts) apply(cmd *cobra.Command, cfg *config.Config) (style.Style, config.Document, error) {
	s, err := cfg.Profile(o.profile)
	if err != nil {
		return style.Style{}, config.Document{}, err
	}
	doc := cfg.Document
	changed := cmd.Flags().Changed

	colors := []struct {
		flag  string
		value string
		set   func(style.Color)
	}{
		{"fill", o.fill, func(c style.Color) { s = s.WithFill(c) }},
		{"stroke", o.stroke, func(c style.Color) { s = s.WithStroke(c) }},
		{"background", o.background, func(c style.Color) { doc.Background = c }},
	}
	for _, c := range colors {
		if !changed(c.flag) {
			continue
		}
		color, err := style.ParseColor(c.value)
		if err != nil {
			return style.Style{}, config.Document{}, errs.Wrap(errs.ErrCodeInvalidStyle, err, "--%s", c.flag)
		}
		c.set(color)
	}

	if changed("stroke-width") {
		s = s.WithStrokeWidth(o.strokeWidth)
	}
	if changed("opacity") {
		s = s.WithOpacity(o.opacity)
	}
	if changed("fill-opacity") {
		s = s.WithFillOpacity(o.fillOpacity)
	}
	if changed("stroke-opacity") {
		s = s.WithStrokeOpacity(o.strokeOpacity)
	}
	if changed("radius") {
		s = s.WithRadius(o.radius)
	}
	if changed("point-type") {
		pt, err := style.ParsePointType(o.pointType)
		if err != nil {
			return style.Style{}, config.Document{}, errs.Wrap(errs.ErrCodeInvalidStyle, err, "--point-type")
		}
		s = s.WithPointType(pt)
	}
	if changed("text") {
		s = s.WithText(o.text)
	}
	if changed("text-class") {
		s = s.WithTextClasses(o.textClasses)
	}
	if changed("text-offset") {
		s = s.WithTextStartOffset(o.textOffset)
	}
	if changed("id") {
		s = s.WithID(o.id)
	}

	if changed("margin") {
		doc.Margin = o.margin
	}
	if changed("stylesheet") {
		css, err := os.ReadFile(o.stylesheet)
		if err != nil {
			return style.Style{}, config.Document{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "read stylesheet")
		}
		doc.Stylesheet = strings.TrimSpace(string(css))
	}
	return s, doc, nil
}

// buildRequest reads the input and resolves style and document options
// into a pipeline request.
func (c *CLI) buildRequest(cmd *cobra.Command, args []string, runner *pipeline.Runner, in *inputOpts, so *styleOpts) (pipeline.Request, string, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return pipeline.Request{}, "", err
	}
	s, doc, err := so.apply(cmd, cfg)
	if err != nil {
		return pipeline.Request{}, "", err
	}
	src, err := readSource(cmd.Context(), args, cmd.InOrStdin(), runner.Cache, in.refresh)
	if err != nil {
		return pipeline.Request{}, "", err
	}

	format := src.format
	if in.format != "" {
		if format, err = gio.ParseFormat(in.format); err != nil {
			return pipeline.Request{}, "", err
		}
	}
	return pipeline.Request{
		Input:    string(src.data),
		Format:   format,
		Style:    s,
		Document: doc,
		Refresh:  in.refresh,
		Logger:   loggerFromContext(cmd.Context()),
	}, src.name, nil
}
