package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	loader := NewLoaderWithPaths([]string{filepath.Join(t.TempDir(), "missing.yaml")})

	cfg, err := loader.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.yaml", `
api:
  base_url: "http://localhost:8080"
  timeout: 3s
ui:
  error_dismiss_delay: 1500ms
  theme: minimal
output:
  default_format: json
  verbose: true
`)

	cfg, err := NewLoader().LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.UI.ErrorDismissDelay)
	assert.Equal(t, "minimal", cfg.UI.Theme)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
	assert.True(t, cfg.Output.Verbose)

	// untouched keys keep defaults
	assert.Equal(t, "heroboard", cfg.API.UserAgent)
	assert.Equal(t, "/heroes", cfg.UI.RoutePrefix)
}

func TestLoadConfigPriority(t *testing.T) {
	dir := t.TempDir()
	system := writeConfig(t, dir, "system.yaml", `
ui:
  theme: high-contrast
  no_emoji: true
output:
  default_format: csv
`)
	project := writeConfig(t, dir, "project.yaml", `
output:
  default_format: markdown
`)

	cfg, err := NewLoaderWithPaths([]string{project, system}).LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "markdown", cfg.Output.DefaultFormat)
	assert.Equal(t, "high-contrast", cfg.UI.Theme)
	assert.True(t, cfg.UI.NoEmoji)
}

func TestLoadConfigExplicitFalseOverridesLowerFile(t *testing.T) {
	dir := t.TempDir()
	system := writeConfig(t, dir, "system.yaml", "output:\n  verbose: true\n")
	project := writeConfig(t, dir, "project.yaml", "output:\n  verbose: false\n")

	cfg, err := NewLoaderWithPaths([]string{project, system}).LoadConfig("")
	require.NoError(t, err)
	assert.False(t, cfg.Output.Verbose)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.yaml", "api: [unclosed\n")

	_, err := NewLoader().LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadConfigBrokenSearchFileIsSkipped(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.yaml", "api: [unclosed\n")

	var warnings []string
	loader := NewLoaderWithPaths([]string{path})
	loader.warn = func(format string, args ...interface{}) {
		warnings = append(warnings, format)
	}

	cfg, err := loader.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Len(t, warnings, 1)
}

func TestLoadConfigValidationFailure(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.yaml", "ui:\n  theme: neon\n")

	_, err := NewLoader().LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

func TestApplyEnvOverrides(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.yaml", "output:\n  default_format: csv\n")

	t.Setenv("HEROBOARD_API_BASE_URL", "https://heroes.example.com")
	t.Setenv("HEROBOARD_API_TIMEOUT", "2s")
	t.Setenv("HEROBOARD_UI_ERROR_DISMISS_DELAY", "250ms")
	t.Setenv("HEROBOARD_UI_NO_EMOJI", "true")
	t.Setenv("HEROBOARD_OUTPUT_DEFAULT_FORMAT", "json")
	t.Setenv("HEROBOARD_LOGGING_FORMAT", "json")

	cfg, err := NewLoader().LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://heroes.example.com", cfg.API.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.API.Timeout)
	assert.Equal(t, 250*time.Millisecond, cfg.UI.ErrorDismissDelay)
	assert.True(t, cfg.UI.NoEmoji)
	assert.Equal(t, "json", cfg.Output.DefaultFormat, "env wins over file")
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestApplyEnvOverridesInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"invalid duration", "HEROBOARD_API_TIMEOUT", "soon"},
		{"invalid bool", "HEROBOARD_OUTPUT_VERBOSE", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := NewLoaderWithPaths(nil).LoadConfig("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to apply environment overrides")
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	original := ConfigPaths
	t.Cleanup(func() { ConfigPaths = original })

	ConfigPaths = []string{filepath.Join(dir, "missing.yaml")}
	_, found := FindConfigFile()
	assert.False(t, found)

	path := writeConfig(t, dir, "present.yaml", "version: \"1.0\"\n")
	ConfigPaths = []string{filepath.Join(dir, "missing.yaml"), path}
	got, found := FindConfigFile()
	assert.True(t, found)
	assert.Equal(t, path, got)
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "file.yaml", "")

	assert.True(t, fileExists(path))
	assert.False(t, fileExists(filepath.Join(dir, "nope.yaml")))
	assert.False(t, fileExists(dir), "directories are not config files")
}

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"yaml file", "config.yaml", false},
		{"yml file", "/tmp/heroboard.yml", false},
		{"path traversal", "../../config.yaml", true},
		{"wrong extension", "config.json", true},
		{"proc filesystem", "/proc/self/config.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfigPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
