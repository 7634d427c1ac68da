package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version string        `yaml:"version" json:"version"`
	API     APIConfig     `yaml:"api" json:"api"`
	UI      UIConfig      `yaml:"ui" json:"ui"`
	Output  OutputConfig  `yaml:"output" json:"output"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// APIConfig configures the remote hero API
type APIConfig struct {
	BaseURL   string        `yaml:"base_url" json:"base_url" env:"HEROBOARD_API_BASE_URL"`       // API root, without /heroes
	Timeout   time.Duration `yaml:"timeout" json:"timeout" env:"HEROBOARD_API_TIMEOUT"`          // per request timeout
	UserAgent string        `yaml:"user_agent" json:"user_agent" env:"HEROBOARD_API_USER_AGENT"` // sent with every request
}

// UIConfig configures the hero page
type UIConfig struct {
	RoutePrefix       string        `yaml:"route_prefix" json:"route_prefix" env:"HEROBOARD_UI_ROUTE_PREFIX"`
	ErrorDismissDelay time.Duration `yaml:"error_dismiss_delay" json:"error_dismiss_delay" env:"HEROBOARD_UI_ERROR_DISMISS_DELAY"`
	Theme             string        `yaml:"theme" json:"theme" env:"HEROBOARD_UI_THEME"` // default|high-contrast|minimal
	NoEmoji           bool          `yaml:"no_emoji" json:"no_emoji" env:"HEROBOARD_UI_NO_EMOJI"`
}

// OutputConfig configures headless command output
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format" env:"HEROBOARD_OUTPUT_DEFAULT_FORMAT"` // text|json|markdown|csv
	ColorMode     string `yaml:"color_mode" json:"color_mode" env:"HEROBOARD_OUTPUT_COLOR_MODE"`             // auto|always|never
	Verbose       bool   `yaml:"verbose" json:"verbose" env:"HEROBOARD_OUTPUT_VERBOSE"`
}

// LoggingConfig configures the log sink
type LoggingConfig struct {
	Format string `yaml:"format" json:"format" env:"HEROBOARD_LOGGING_FORMAT"` // console|json
	File   string `yaml:"file" json:"file" env:"HEROBOARD_LOGGING_FILE"`       // empty: stderr for commands, discarded for browse
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		API: APIConfig{
			BaseURL:   "https://hahow-recruit.herokuapp.com",
			Timeout:   10 * time.Second,
			UserAgent: "heroboard",
		},
		UI: UIConfig{
			RoutePrefix:       "/heroes",
			ErrorDismissDelay: 5 * time.Second,
			Theme:             "default",
			NoEmoji:           false,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Verbose:       false,
		},
		Logging: LoggingConfig{
			Format: "console",
			File:   "",
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateAPIConfig(); err != nil {
		return err
	}
	if err := c.validateUIConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	return c.validateLoggingConfig()
}

// validateAPIConfig validates API-related configuration
func (c *Config) validateAPIConfig() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api base_url: %q (must be an http or https URL)", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api timeout must be positive")
	}
	return nil
}

// validateUIConfig validates page-related configuration
func (c *Config) validateUIConfig() error {
	if !strings.HasPrefix(c.UI.RoutePrefix, "/") {
		return fmt.Errorf("route_prefix must start with '/'")
	}
	if c.UI.ErrorDismissDelay <= 0 {
		return fmt.Errorf("error_dismiss_delay must be positive")
	}
	if c.UI.Theme != "" {
		validThemes := map[string]bool{
			"default":       true,
			"high-contrast": true,
			"minimal":       true,
		}
		if !validThemes[c.UI.Theme] {
			return fmt.Errorf("invalid theme: %s (must be one of: default, high-contrast, minimal)", c.UI.Theme)
		}
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"json":     true,
			"text":     true,
			"markdown": true,
			"csv":      true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: json, text, markdown, csv)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}

// validateLoggingConfig validates logging configuration
func (c *Config) validateLoggingConfig() error {
	switch c.Logging.Format {
	case "", "console", "json":
		return nil
	default:
		return fmt.Errorf("invalid logging format: %s (must be one of: console, json)", c.Logging.Format)
	}
}
