// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-renderer/internal/layout"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Input  string `json:"input,omitempty"`  // Path to resume JSON document
	Output string `json:"output,omitempty"` // Path to write the rendered PDF

	// Fonts
	FontFamily  string `json:"font_family,omitempty"`  // Preferred font family name
	FontRegular string `json:"font_regular,omitempty"` // Path to regular-weight TTF
	FontBold    string `json:"font_bold,omitempty"`    // Path to bold-weight TTF

	// Layout
	Pages  int     `json:"pages,omitempty"`  // Requested page count (0 = unconstrained)
	Margin float64 `json:"margin,omitempty"` // Page margin in points (0 = default)

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed pipeline information
	Port    int  `json:"port,omitempty"`    // HTTP server port for the serve command
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate numeric ranges
	if c.Pages < 0 {
		return fmt.Errorf("config error: 'pages' must be non-negative")
	}
	if c.Margin != 0 && c.Margin < layout.MinMargin {
		return fmt.Errorf("config error: 'margin' must be at least %.0f points", float64(layout.MinMargin))
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	// A font family without file paths cannot be registered
	if c.FontFamily != "" && c.FontRegular == "" {
		return fmt.Errorf("config error: 'font_family' requires 'font_regular'")
	}

	// Validate file paths exist (if specified)
	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}

	if c.FontRegular != "" {
		if _, err := os.Stat(c.FontRegular); os.IsNotExist(err) {
			return fmt.Errorf("config error: font file not found: %s", c.FontRegular)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.FontFamily == "" {
		result.FontFamily = defaults.FontFamily
	}
	if result.FontRegular == "" {
		result.FontRegular = defaults.FontRegular
	}
	if result.FontBold == "" {
		result.FontBold = defaults.FontBold
	}

	// Numeric fields: use default if zero
	if result.Pages == 0 {
		result.Pages = defaults.Pages
	}
	if result.Margin == 0 {
		result.Margin = defaults.Margin
	}
	if result.Port == 0 {
		if defaults.Port > 0 {
			result.Port = defaults.Port
		} else {
			result.Port = 8080
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
