package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "1.0", cfg.Version)
	assert.Equal(t, "https://hahow-recruit.herokuapp.com", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "/heroes", cfg.UI.RoutePrefix)
	assert.Equal(t, 5*time.Second, cfg.UI.ErrorDismissDelay)
	assert.Equal(t, "default", cfg.UI.Theme)
	assert.Equal(t, "text", cfg.Output.DefaultFormat)
	assert.Equal(t, "console", cfg.Logging.Format)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:   "base url without scheme",
			mutate: func(c *Config) { c.API.BaseURL = "example.com" },
			errMsg: `invalid api base_url: "example.com" (must be an http or https URL)`,
		},
		{
			name:   "zero timeout",
			mutate: func(c *Config) { c.API.Timeout = 0 },
			errMsg: "api timeout must be positive",
		},
		{
			name:   "relative route prefix",
			mutate: func(c *Config) { c.UI.RoutePrefix = "heroes" },
			errMsg: "route_prefix must start with '/'",
		},
		{
			name:   "negative dismiss delay",
			mutate: func(c *Config) { c.UI.ErrorDismissDelay = -time.Second },
			errMsg: "error_dismiss_delay must be positive",
		},
		{
			name:   "unknown theme",
			mutate: func(c *Config) { c.UI.Theme = "neon" },
			errMsg: "invalid theme: neon (must be one of: default, high-contrast, minimal)",
		},
		{
			name:   "invalid output format",
			mutate: func(c *Config) { c.Output.DefaultFormat = "invalid" },
			errMsg: "invalid output format: invalid (must be one of: json, text, markdown, csv)",
		},
		{
			name:   "invalid color mode",
			mutate: func(c *Config) { c.Output.ColorMode = "invalid" },
			errMsg: "invalid color mode: invalid (must be one of: auto, always, never)",
		},
		{
			name:   "invalid logging format",
			mutate: func(c *Config) { c.Logging.Format = "xml" },
			errMsg: "invalid logging format: xml (must be one of: console, json)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.errMsg, err.Error())
		})
	}
}

func TestSampleConfigsLoad(t *testing.T) {
	for name, body := range map[string]string{
		"full":    SampleConfig(),
		"minimal": MinimalSampleConfig(),
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

			cfg, err := NewLoaderWithPaths(nil).LoadConfig(path)
			require.NoError(t, err)
			assert.Equal(t, DefaultConfig(), cfg)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	assert.Equal(t, filepath.Join(home, ".config/heroboard/config.yaml"), expandPath("~/.config/heroboard/config.yaml"))
	assert.Equal(t, "/etc/heroboard/config.yaml", expandPath("/etc/heroboard/config.yaml"))
	assert.Equal(t, "./.heroboard.yaml", expandPath("./.heroboard.yaml"))
}

func TestGetConfigPaths(t *testing.T) {
	paths := GetConfigPaths()

	require.Len(t, paths, len(ConfigPaths))
	for _, path := range paths {
		assert.False(t, strings.HasPrefix(path, "~"), "path %s was not expanded", path)
	}
}
