// Package config loads viewer settings from a YAML file and provides
// default values when no file is present.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the viewer configuration loaded from YAML.
type Config struct {
	// Display parameters
	Display struct {
		// Colormap is the name of the colormap applied at startup
		Colormap string `yaml:"colormap"`

		// WindowLow and WindowHigh are the initial window levels
		WindowLow  float64 `yaml:"windowLow"`
		WindowHigh float64 `yaml:"windowHigh"`

		// Volumetric selects the projection view instead of the slice view
		Volumetric bool `yaml:"volumetric"`
	} `yaml:"display"`

	// Volume rendering parameters
	Volume struct {
		// Opacity scales the projected intensity
		Opacity float64 `yaml:"opacity"`
	} `yaml:"volume"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Display.Colormap = "viridis"
	cfg.Display.WindowLow = -100
	cfg.Display.WindowHigh = 1000
	cfg.Display.Volumetric = false

	cfg.Volume.Opacity = 0.25

	return cfg
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, it returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file.
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
