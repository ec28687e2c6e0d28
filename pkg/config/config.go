// Package config loads style profiles and document defaults from TOML.
//
// A configuration file looks like:
//
//	[document]
//	margin = 10.0
//	background = "white"
//	stylesheet = ".label { font: 12px sans-serif; }"
//
//	[style]
//	stroke = "#333"
//	stroke_width = 1.5
//
//	[profiles.pois]
//	point_type = "poi"
//	text = "Cafe"
//	icon_path = "<path d='M 0 0 L 100 100'/>"
//	icon_size = { width = 24, height = 24 }
//
// The [style] table is the base of every profile: [Config.Profile] merges the
// named profile over it. Unknown keys are rejected so that typos surface
// instead of silently rendering with defaults.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/geosvg/pkg/errors"
	"github.com/matzehuels/geosvg/pkg/style"
)

const (
	appName  = "geosvg"
	fileName = "config.toml"
)

// Document holds the options of the outer <svg> element.
type Document struct {
	Margin     float64     `toml:"margin" json:"margin,omitempty"`
	Background style.Color `toml:"background" json:"background,omitzero"`
	Stylesheet string      `toml:"stylesheet" json:"stylesheet,omitempty"`
}

// Config is a parsed configuration file.
type Config struct {
	Document Document               `toml:"document"`
	Style    style.Style            `toml:"style"`
	Profiles map[string]style.Style `toml:"profiles"`
}

// Default returns the built-in configuration: no margin, default style,
// no profiles.
func Default() *Config {
	return &Config{Style: style.Default()}
}

// Decode parses TOML text and validates the result.
func Decode(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidStyle, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errs.New(errs.ErrCodeInvalidStyle, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and decodes the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open config %s", path)
		}
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "read config %s", path)
	}
	cfg, err := Decode(string(data))
	if err != nil {
		return nil, errs.Wrap(errs.GetCode(err), err, "config %s", path)
	}
	return cfg, nil
}

// Find loads path when it is set. Otherwise it loads the file at
// [DefaultPath] if one exists, and falls back to [Default].
func Find(path string) (*Config, string, error) {
	if path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}
	def, err := DefaultPath()
	if err != nil {
		return Default(), "", nil
	}
	if _, err := os.Stat(def); err != nil {
		return Default(), "", nil
	}
	cfg, err := Load(def)
	return cfg, def, err
}

// DefaultPath returns $XDG_CONFIG_HOME/geosvg/config.toml, falling back to
// ~/.config.
func DefaultPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Profile returns the base style with the named profile merged over it.
// The empty name selects the base style.
func (c *Config) Profile(name string) (style.Style, error) {
	if name == "" {
		return c.Style, nil
	}
	p, ok := c.Profiles[name]
	if !ok {
		return style.Style{}, errs.New(errs.ErrCodeInvalidStyle, "unknown style profile %q (have: %s)", name, strings.Join(c.ProfileNames(), ", "))
	}
	return c.Style.Merge(p), nil
}

// ProfileNames lists the profiles in sorted order.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the document options and every style.
func (c *Config) Validate() error {
	if err := errs.ValidateNonNegative("margin", c.Document.Margin); err != nil {
		return err
	}
	if err := ValidateStyle(c.Style); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidStyle, err, "[style]")
	}
	for _, name := range c.ProfileNames() {
		if err := ValidateStyle(c.Profiles[name]); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidStyle, err, "[profiles.%s]", name)
		}
	}
	return nil
}

// Encode writes c back as TOML.
func (c *Config) Encode() (string, error) {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return "", errs.Wrap(errs.ErrCodeInternal, err, "encode config")
	}
	return b.String(), nil
}
