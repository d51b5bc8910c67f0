package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/termdrift/pkg/errors"
	"github.com/go-drift/termdrift/pkg/theme"
)

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "go.mod", "module example.com/acme/dashboard/v2\n\ngo 1.24\n")

	cfg, err := Resolve(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "example.com/acme/dashboard/v2", cfg.ModulePath)
	assert.Equal(t, "dashboard", cfg.AppName)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, theme.BrightnessDark, cfg.Theme)
	assert.Zero(t, cfg.TickInterval)
	assert.Empty(t, cfg.Debug)
}

func TestResolveNestedModule(t *testing.T) {
	root := t.TempDir()
	write(t, root, "go.mod", "module example.com/tools\n")
	sub := filepath.Join(root, "cmd", "viewer")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	cfg, err := Resolve(sub, "")
	require.NoError(t, err)
	assert.Equal(t, "example.com/tools", cfg.ModulePath)
	assert.Equal(t, "tools", cfg.AppName)
}

func TestResolveOutsideModule(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scratch")
	require.NoError(t, os.Mkdir(dir, 0o755))

	cfg, err := Resolve(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "scratch", cfg.AppName)
}

func TestResolveFile(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, FileName, `
app:
  name: monitor
  theme: light
engine:
  tick_interval: 33ms
  max_fps: 30
  debug: 127.0.0.1:6060
log:
  level: debug
  file: termdrift.log
`)

	cfg, err := Resolve(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "monitor", cfg.AppName)
	assert.Equal(t, theme.BrightnessLight, cfg.Theme)
	assert.Equal(t, 33*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 30, cfg.MaxFPS)
	assert.Equal(t, "127.0.0.1:6060", cfg.Debug)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "termdrift.log", cfg.LogFile)
}

func TestResolveExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	write(t, dir, "custom.yaml", "app:\n  name: custom\n")

	cfg, err := Resolve(t.TempDir(), path)
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.AppName)
}

func TestResolveInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "app: [unclosed"},
		{"negative tick", "engine:\n  tick_interval: -5ms\n"},
		{"negative fps", "engine:\n  max_fps: -1\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"bad theme", "app:\n  theme: neon\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			write(t, dir, FileName, tt.content)
			_, err := Resolve(dir, "")
			require.Error(t, err)
			assert.Equal(t, errors.KindConfig, errors.KindOf(err))
		})
	}
}
