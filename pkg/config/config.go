// Package config loads detector configuration from YAML or JSON files.
// Configuration only toggles detectors on and off; detector behavior itself
// is fixed.
package config

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DetectorConfig enables or disables one detector by name.
type DetectorConfig struct {
	Name    string `yaml:"name"    json:"name"`
	Enabled bool   `yaml:"enabled" json:"enabled"`
}

// Config represents the analyzer configuration.
type Config struct {
	ID        string            `yaml:"id"        json:"id"`
	Detectors []*DetectorConfig `yaml:"detectors" json:"detectors"`
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(filename string) (*Config, error) {
	slog.Debug("loading config from file", "filename", filename)
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", filename)
	}

	var cfg Config

	// Try YAML first, then JSON
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		if jsonErr := json.Unmarshal(data, &cfg); jsonErr != nil {
			return nil, errors.Wrapf(err, "failed to parse config file %s", filename)
		}
	}

	slog.Debug("loaded config", "detector_count", len(cfg.Detectors))
	return &cfg, nil
}

// DefaultConfig returns a configuration with every detector enabled. An
// empty Detectors list means no overrides.
func DefaultConfig(id string) *Config {
	return &Config{ID: id}
}

// IsEnabled reports whether a detector should run. Detectors without an
// explicit entry are enabled.
func (c *Config) IsEnabled(name string) bool {
	for _, d := range c.Detectors {
		if d.Name == name {
			return d.Enabled
		}
	}
	return true
}
