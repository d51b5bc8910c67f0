// Package config loads the optional termdrift.yaml file.
package config

import (
	goerrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/termdrift/pkg/errors"
	"github.com/go-drift/termdrift/pkg/logging"
	"github.com/go-drift/termdrift/pkg/theme"
)

// FileName is the config file looked up in the working directory.
const FileName = "termdrift.yaml"

// Config represents the optional termdrift.yaml configuration.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Engine EngineConfig `yaml:"engine"`
	Log    LogConfig    `yaml:"log"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
	// Theme is "dark" (default) or "light".
	Theme string `yaml:"theme,omitempty"`
}

// EngineConfig contains frame loop settings.
type EngineConfig struct {
	TickInterval time.Duration `yaml:"tick_interval,omitempty"`
	MaxFPS       int           `yaml:"max_fps,omitempty"`
	// Debug is the listen address of the diagnostics server. Empty
	// disables it.
	Debug string `yaml:"debug,omitempty"`
}

// LogConfig controls framework logging.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
	// File receives log output. Full-screen sessions own stderr, so logs
	// are discarded when no file is set.
	File string `yaml:"file,omitempty"`
}

// Resolved contains configuration with defaults applied.
type Resolved struct {
	Root         string
	ModulePath   string
	AppName      string
	Theme        theme.Brightness
	TickInterval time.Duration
	MaxFPS       int
	Debug        string
	LogLevel     slog.Level
	LogFile      string
}

// Load reads the config at path. A missing file yields an empty Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if goerrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, configError(fmt.Errorf("failed to read %s: %w", path, err))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, configError(fmt.Errorf("failed to parse %s: %w", path, err))
	}
	return &cfg, nil
}

// Resolve loads the config at path, or termdrift.yaml in dir when path is
// empty, and fills in defaults.
func Resolve(dir, path string) (*Resolved, error) {
	if path == "" {
		path = filepath.Join(dir, FileName)
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	modPath := modulePath(dir)
	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modPath, dir)
	}

	if cfg.Engine.TickInterval < 0 {
		return nil, configError(fmt.Errorf("engine.tick_interval must not be negative, got %s", cfg.Engine.TickInterval))
	}
	if cfg.Engine.MaxFPS < 0 {
		return nil, configError(fmt.Errorf("engine.max_fps must not be negative, got %d", cfg.Engine.MaxFPS))
	}

	var tone theme.Brightness
	switch strings.ToLower(strings.TrimSpace(cfg.App.Theme)) {
	case "", "dark":
		tone = theme.BrightnessDark
	case "light":
		tone = theme.BrightnessLight
	default:
		return nil, configError(fmt.Errorf("app.theme must be dark or light, got %q", cfg.App.Theme))
	}

	level := slog.LevelInfo
	if s := strings.TrimSpace(cfg.Log.Level); s != "" {
		if err := level.UnmarshalText([]byte(s)); err != nil {
			return nil, configError(fmt.Errorf("log.level: %w", err))
		}
	}

	return &Resolved{
		Root:         dir,
		ModulePath:   modPath,
		AppName:      appName,
		Theme:        tone,
		TickInterval: cfg.Engine.TickInterval,
		MaxFPS:       cfg.Engine.MaxFPS,
		Debug:        strings.TrimSpace(cfg.Engine.Debug),
		LogLevel:     level,
		LogFile:      strings.TrimSpace(cfg.Log.File),
	}, nil
}

func configError(err error) *errors.TermError {
	return &errors.TermError{Op: "config.Resolve", Kind: errors.KindConfig, Err: err, Timestamp: time.Now()}
}

// modulePath returns the module path of the nearest enclosing go.mod, or
// "" outside a module.
func modulePath(dir string) string {
	for {
		data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
		if err == nil {
			return modfile.ModulePath(data)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			logging.Logger().Debug("no go.mod found", "dir", dir)
			return ""
		}
		dir = parent
	}
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		prefix, _, ok := module.SplitPathVersion(modulePath)
		if ok {
			parts := strings.Split(prefix, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "termdrift"
	}
	return base
}
