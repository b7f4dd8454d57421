// Package config holds the unitconv configuration: catalog sources,
// projection settings, and logging. Configuration loads from a YAML
// file with environment-variable overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all unitconv configuration.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Logging LoggingConfig `yaml:"logging"`
}

// CatalogConfig configures catalog resolution.
type CatalogConfig struct {
	// Sources are catalog documents, JSON or YAML by extension.
	Sources []string `yaml:"sources"`
	// Watch invalidates cached catalogs when a source file changes.
	Watch bool `yaml:"watch"`
	// CommonKinds restricts the compact projection; empty keeps all.
	CommonKinds []string `yaml:"common_kinds"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Sources: []string{"units.ucum.json"},
			CommonKinds: []string{
				"Length", "Mass", "Time", "ElectricCurrent", "Temperature",
				"Volume", "Area", "Velocity", "Acceleration", "Force",
				"Pressure", "Energy", "Power", "Frequency", "Angle",
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment variables override either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if sources := os.Getenv("UNITCONV_CATALOG"); sources != "" {
		c.Catalog.Sources = splitList(sources)
	}
	if watch := os.Getenv("UNITCONV_WATCH"); watch != "" {
		c.Catalog.Watch = watch == "1" || strings.EqualFold(watch, "true")
	}
	if level := os.Getenv("UNITCONV_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, string(os.PathListSeparator))
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
