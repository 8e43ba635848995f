// Package config loads prepkit settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"prepkit/pkg/seq"
)

// Config holds every knob the drills and the CLI read.
type Config struct {
	// Logging controls the diagnostic zap logger on stderr.
	Logging LoggingConfig `yaml:"logging"`

	// Output controls the drill lines on stdout.
	Output OutputConfig `yaml:"output"`

	// CatalogPath points at a YAML catalog; empty means the built-in one.
	CatalogPath string `yaml:"catalog_path,omitempty"`

	// Drills lists the drills to run; empty runs all of them in order.
	Drills []string `yaml:"drills,omitempty"`

	Inputs InputsConfig `yaml:"inputs"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// OutputConfig configures the console printer.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json
}

// InputsConfig holds the fixed inputs each drill works on.
type InputsConfig struct {
	Numbers         []int    `yaml:"numbers"`
	Fruits          []string `yaml:"fruits"`
	FilterNumbers   []int    `yaml:"filter_numbers"`
	FilterThreshold int      `yaml:"filter_threshold"`
	CallbackResult  int      `yaml:"callback_result"`
	// PriceLookup is a "category/item" pair the prices drill looks up.
	PriceLookup string `yaml:"price_lookup"`
}

var validLevels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns the inputs the drills were written against.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "warn"},
		Output:  OutputConfig{Format: "text"},
		Inputs: InputsConfig{
			Numbers:         []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
			Fruits:          []string{"apple", "banana", "cherry"},
			FilterNumbers:   []int{2, 4, 6, 8, 20, 10},
			FilterThreshold: 8,
			CallbackResult:  20,
			PriceLookup:     "electronics/laptop",
		},
	}
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error. Callers layer flags on top, then call Validate.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
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

// applyEnvOverrides lets PREPKIT_* variables win over the file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PREPKIT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PREPKIT_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("PREPKIT_CATALOG"); v != "" {
		c.CatalogPath = v
	}
}

// Validate checks values that would otherwise fail deep inside a drill.
func (c *Config) Validate() error {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = "warn"
	}
	if !slices.Contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging.level %q: want one of %s", c.Logging.Level, strings.Join(validLevels, ", "))
	}
	for _, n := range c.Inputs.Numbers {
		if n > seq.MaxSquareOperand || n < -seq.MaxSquareOperand {
			return fmt.Errorf("invalid inputs.numbers value %d: squaring it overflows int", n)
		}
	}
	return nil
}
