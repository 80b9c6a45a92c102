// Package config loads the chart's YAML configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ViewConfig holds the initial view parameters.
type ViewConfig struct {
	RotationDeg    float64 `yaml:"rotation_deg"`     // initial RA rotation
	RefDecDeg      float64 `yaml:"ref_dec_deg"`      // declination at the disk center
	ObserverLonDeg float64 `yaml:"observer_lon_deg"` // longitude for sidereal rotation
	Opacity        float64 `yaml:"opacity"`          // 0-1
	Sidereal       bool    `yaml:"sidereal"`         // drive rotation from the clock
}

// StyleConfig holds the drawing style.
type StyleConfig struct {
	StrokeWidth float64     `yaml:"stroke_width"`
	MarkerSize  float64     `yaml:"marker_size"`
	LineColor   ColorConfig `yaml:"line_color"`
}

// ColorConfig is a normalized RGB triple.
type ColorConfig struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

// CatalogConfig points at optional external catalog files. When empty the
// embedded defaults are used.
type CatalogConfig struct {
	StarsPath          string `yaml:"stars_path"`
	ConstellationsPath string `yaml:"constellations_path"`
}

// Config aggregates all application configuration.
type Config struct {
	View     ViewConfig    `yaml:"view"`
	Style    StyleConfig   `yaml:"style"`
	Catalog  CatalogConfig `yaml:"catalog"`
	LogLevel string        `yaml:"log_level"`
	FPSLimit float64       `yaml:"fps_limit"` // max render passes per second, 0 = unlimited
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		View: ViewConfig{
			RefDecDeg: 45,
			Opacity:   1,
			Sidereal:  true,
		},
		Style: StyleConfig{
			StrokeWidth: 1,
			MarkerSize:  2,
			LineColor:   ColorConfig{R: 0.55, G: 0.6, B: 0.9},
		},
		LogLevel: "info",
		FPSLimit: 30,
	}
}

// Load reads a YAML file and returns the configuration. Missing fields fall
// back to defaults; invalid values are errors.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.View.Opacity < 0 || c.View.Opacity > 1 {
		return fmt.Errorf("view.opacity must be between 0 and 1, got %.2f", c.View.Opacity)
	}
	if c.View.RefDecDeg < -90 || c.View.RefDecDeg > 90 {
		return fmt.Errorf("view.ref_dec_deg must be between -90 and 90, got %.2f", c.View.RefDecDeg)
	}
	if c.Style.StrokeWidth <= 0 {
		c.Style.StrokeWidth = 1
	}
	if c.Style.MarkerSize <= 0 {
		c.Style.MarkerSize = 2
	}
	if c.FPSLimit < 0 {
		return fmt.Errorf("fps_limit must be >= 0, got %.2f", c.FPSLimit)
	}
	return nil
}
