// Package config provides configuration management for infreport.
//
// Configuration only holds tool behavior (output format, catalog
// location, limits); everything about the report content comes from the
// input document. Command-line flags override anything set here.
//
// Config file locations (priority order):
//  1. $INFREPORT_CONFIG
//  2. ./infreport.yaml
//  3. ~/.config/infreport/config.yaml
//  4. /etc/infreport/config.yaml
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Version int           `yaml:"version"`
	Output  OutputConfig  `yaml:"output"`
	Catalog CatalogConfig `yaml:"catalog"`
	Watch   WatchConfig   `yaml:"watch"`
	Limits  LimitsConfig  `yaml:"limits"`
}

// OutputConfig controls report serialization.
type OutputConfig struct {
	// Format selects the exporter: "json" or "yaml".
	Format string `yaml:"format"`
	// Indent is the JSON indentation string.
	Indent string `yaml:"indent"`
}

// CatalogConfig controls the optional SQLite catalog.
type CatalogConfig struct {
	// Path of the catalog database; empty disables persistence unless
	// overridden on the command line.
	Path string `yaml:"path,omitempty"`
}

// WatchConfig controls watch mode.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// LimitsConfig bounds resource use.
type LimitsConfig struct {
	// MaxInputBytes caps the size of an input document.
	MaxInputBytes int64 `yaml:"max_input_bytes"`
}

// Load finds and loads the config file, or returns defaults if none
// found.
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, path, nil
}

// DefaultConfig returns sensible defaults for a fresh installation.
func DefaultConfig() *Config {
	cfg := &Config{Version: 1}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Output.Format == "" {
		c.Output.Format = "json"
	}
	if c.Output.Indent == "" {
		c.Output.Indent = "  "
	}
	if c.Watch.Debounce == 0 {
		c.Watch.Debounce = 500 * time.Millisecond
	}
	if c.Limits.MaxInputBytes == 0 {
		c.Limits.MaxInputBytes = 16 << 20
	}
}
