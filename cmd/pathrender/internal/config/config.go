// Package config loads the optional pathrender.yaml configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vasalvit/svgpath"
)

// FileName is the configuration file looked up when -config is not given.
const FileName = "pathrender.yaml"

// Config represents the optional pathrender.yaml configuration.
type Config struct {
	Width  int           `yaml:"width,omitempty"`
	Height int           `yaml:"height,omitempty"`
	Style  svgpath.Style `yaml:"style"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{Width: 256, Height: 256, Style: svgpath.DefaultStyle}
}

// LoadOptional reads the configuration at path if present. Keys missing
// from the file keep their default value.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Load reads the configuration at path, which must exist. Keys missing
// from the file keep their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the image size and the colors of the style.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image size %dx%d is not positive", c.Width, c.Height)
	}
	for _, col := range []string{c.Style.Stroke, c.Style.Fill} {
		if col == "" {
			continue
		}
		if _, err := svgpath.ParseColor(col); err != nil {
			return err
		}
	}
	return nil
}
