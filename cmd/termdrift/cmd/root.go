// Package cmd implements the termdrift CLI commands.
//
// The root command dispatches to run, snapshot, demos and version. Every
// command accepts --config pointing at a termdrift.yaml; without it the
// file is looked up in the working directory.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/termdrift/cmd/termdrift/internal/config"
	"github.com/go-drift/termdrift/cmd/termdrift/internal/demos"
	"github.com/go-drift/termdrift/pkg/core"
	"github.com/go-drift/termdrift/pkg/logging"
	"github.com/go-drift/termdrift/pkg/theme"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "termdrift",
		Short: "termdrift - reactive terminal UIs in Go",
		Long: `termdrift renders reactive component trees to the terminal.

Use "termdrift <command> --help" for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to termdrift.yaml (default ./termdrift.yaml)")

	root.AddCommand(
		newRunCommand(&configPath),
		newSnapshotCommand(&configPath),
		newDemosCommand(),
		newVersionCommand(),
	)
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// loadConfig resolves the config and applies its theme.
func loadConfig(path string) (*config.Resolved, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Resolve(dir, path)
	if err != nil {
		return nil, err
	}
	theme.Set(theme.ForBrightness(cfg.Theme))
	core.ErrorBannerStyle = theme.Current().ErrorStyle()
	return cfg, nil
}

// setupLogging points the framework logger at cfg.LogFile, or at fallback
// when no file is configured. A nil fallback discards logs. The returned
// func restores silence and closes the file.
func setupLogging(cfg *config.Resolved, fallback io.Writer) (func(), error) {
	w := fallback
	var file *os.File
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		file, w = f, f
	}
	if w == nil {
		logging.SetLogger(nil)
		return func() {}, nil
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel})).
		With("app", cfg.AppName)
	logging.SetLogger(logger)
	return func() {
		logging.SetLogger(nil)
		if file != nil {
			_ = file.Close()
		}
	}, nil
}

func lookupDemo(name string) (demos.Demo, error) {
	d, ok := demos.Lookup(name)
	if !ok {
		return demos.Demo{}, fmt.Errorf("unknown demo %q (available: %v)", name, demos.Names())
	}
	return d, nil
}
