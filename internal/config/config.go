// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/victorsfleite/resume-parser/internal/tokens"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or come from
// CLI flags.
type Config struct {
	// Sections is the default subset of sections to parse. Empty means
	// everything.
	Sections []string `json:"sections,omitempty"`
	// Out is the directory profile artifacts are written to.
	Out string `json:"out,omitempty"`
	// Verbose prints a human-readable summary of each parsed profile.
	Verbose bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	for _, name := range c.Sections {
		if _, ok := tokens.ParseSection(name); !ok {
			return fmt.Errorf("config error: unknown section %q", name)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This applies config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c
	if len(result.Sections) == 0 {
		result.Sections = defaults.Sections
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	return result
}
