package config

import (
	"github.com/alexisbeaulieu97/colorfield/internal/domain/color"
	"github.com/alexisbeaulieu97/colorfield/internal/swatch"
)

// Storage drivers for the custom swatch colors.
const (
	DriverMemory = "memory"
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

// Config is the colorfield configuration document.
type Config struct {
	Label        string   `yaml:"label,omitempty" validate:"max=80"`
	Seed         string   `yaml:"seed,omitempty" validate:"omitempty,css_color"`
	CustomColors *bool    `yaml:"custom_colors,omitempty"`
	CustomLimit  int      `yaml:"custom_limit,omitempty" validate:"omitempty,min=1,max=100"`
	Presets      []Preset `yaml:"presets,omitempty" validate:"omitempty,dive"`
	Storage      Storage  `yaml:"storage,omitempty"`
	Log          Log      `yaml:"log,omitempty"`
}

// Preset is a named palette color.
type Preset struct {
	Name  string `yaml:"name" validate:"required,max=40"`
	Value string `yaml:"value" validate:"required,css_color"`
}

// Storage selects where custom colors are kept.
type Storage struct {
	Driver string `yaml:"driver,omitempty" validate:"omitempty,oneof=memory json sqlite"`
	Path   string `yaml:"path,omitempty"`
}

// Log configures the logger used while the field is on screen.
type Log struct {
	Level  string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	File   string `yaml:"file,omitempty"`
	Format string `yaml:"format,omitempty" validate:"omitempty,oneof=text json logfmt"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills unset fields in place.
func ApplyDefaults(cfg *Config) {
	if cfg.Label == "" {
		cfg.Label = "Color"
	}
	if cfg.Seed == "" {
		cfg.Seed = "#ffffff"
	}
	if cfg.CustomColors == nil {
		enabled := true
		cfg.CustomColors = &enabled
	}
	if cfg.CustomLimit == 0 {
		cfg.CustomLimit = swatch.DefaultCustomLimit
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DriverJSON
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

// CustomColorsEnabled reports whether the interactive picker is offered.
func (c *Config) CustomColorsEnabled() bool {
	return c.CustomColors == nil || *c.CustomColors
}

// SwatchPresets converts the configured palette. A nil result selects the
// stock palette.
func (c *Config) SwatchPresets() []swatch.Preset {
	if len(c.Presets) == 0 {
		return nil
	}
	out := make([]swatch.Preset, 0, len(c.Presets))
	for _, p := range c.Presets {
		out = append(out, swatch.Preset{Name: p.Name, Value: color.Value(p.Value)})
	}
	return out
}
