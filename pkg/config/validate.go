package config

import (
	errs "github.com/matzehuels/geosvg/pkg/errors"
	"github.com/matzehuels/geosvg/pkg/style"
)

// ValidateStyle rejects values that would produce invalid markup or a
// nonsensical bound: opacities outside [0, 1], negative widths or radii,
// ids that cannot be referenced and malformed class lists.
func ValidateStyle(s style.Style) error {
	unit := map[string]*float64{
		"opacity":        s.Opacity,
		"fill_opacity":   s.FillOpacity,
		"stroke_opacity": s.StrokeOpacity,
	}
	for _, name := range []string{"opacity", "fill_opacity", "stroke_opacity"} {
		if v := unit[name]; v != nil {
			if err := errs.ValidateUnitInterval(name, *v); err != nil {
				return err
			}
		}
	}
	if s.StrokeWidth != nil {
		if err := errs.ValidateNonNegative("stroke_width", *s.StrokeWidth); err != nil {
			return err
		}
	}
	if err := errs.ValidateNonNegative("radius", s.Radius); err != nil {
		return err
	}
	if err := errs.ValidateID(s.ID); err != nil {
		return err
	}
	if err := errs.ValidateClasses(s.TextClasses); err != nil {
		return err
	}
	if s.IconSize != nil && (s.IconSize.Width < 0 || s.IconSize.Height < 0) {
		return errs.New(errs.ErrCodeInvalidStyle, "icon_size must not be negative")
	}
	if s.IconViewBox != nil && (s.IconViewBox.Width < 0 || s.IconViewBox.Height < 0) {
		return errs.New(errs.ErrCodeInvalidStyle, "icon_viewbox must not have a negative size")
	}
	return nil
}
