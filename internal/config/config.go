// Package config handles texgen configuration loading and saving.
package config

import (
	"fmt"

	"github.com/jmylchreest/texgen/internal/huewheel"
	"github.com/jmylchreest/texgen/internal/image"
	"github.com/jmylchreest/texgen/internal/logging"
)

// Config holds all generation settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Hue     HueConfig     `yaml:"hue"`
	Logging LoggingConfig `yaml:"logging"`

	// Workers bounds how many textures render at once.
	Workers int `yaml:"workers"`

	// Textures selects catalogue entries by name. Empty means all.
	Textures []string `yaml:"textures,omitempty"`

	// CircleMask is an optional image whose alpha clips circle_t.
	CircleMask string `yaml:"circle_mask,omitempty"`
}

// OutputConfig holds output settings.
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"`
	Bundle string `yaml:"bundle,omitempty"` // Optional .tar.xz/.tar.gz/.tar archive
}

// HueConfig holds hue wheel settings.
type HueConfig struct {
	Dimension int    `yaml:"dimension"`
	Mode      string `yaml:"mode"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:    "tex",
			Format: string(image.FormatPNG),
		},
		Hue: HueConfig{
			Dimension: huewheel.DefaultDimension,
			Mode:      string(huewheel.RadialValue),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Workers: 4,
	}
}

// Validate checks the configuration for values the generators would reject.
func (c *Config) Validate() error {
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir cannot be empty")
	}
	if _, err := image.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if c.Hue.Dimension < huewheel.MinDimension {
		return fmt.Errorf("hue.dimension: %w: %d (must be >= %d)",
			huewheel.ErrInvalidDimension, c.Hue.Dimension, huewheel.MinDimension)
	}
	if !huewheel.RadialChannel(c.Hue.Mode).Valid() {
		return fmt.Errorf("hue.mode: unknown mode %q (valid: %s, %s)",
			c.Hue.Mode, huewheel.RadialValue, huewheel.RadialSaturation)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if _, err := logging.ResolveLevel(logging.Options{Level: c.Logging.Level}); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}
