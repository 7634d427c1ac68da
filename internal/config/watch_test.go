package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.yaml", "ui:\n  theme: default\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(cfg *Config, err error) {
			if err == nil {
				reloaded <- cfg
			}
		})
	}()

	// give the watcher time to register the directory
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("ui:\n  theme: minimal\n"), 0o600)
		select {
		case cfg := <-reloaded:
			return cfg.UI.Theme == "minimal"
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.yaml", "version: \"1.0\"\n")

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	calls := 0
	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o600)
	}()

	err := Watch(ctx, path, func(*Config, error) { calls++ })
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestWatchRejectsInvalidPath(t *testing.T) {
	err := Watch(context.Background(), "config.json", func(*Config, error) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config path")
}
