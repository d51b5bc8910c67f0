package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/go-drift/termdrift/cmd/termdrift/internal/config"
	"github.com/go-drift/termdrift/pkg/engine"
	"github.com/go-drift/termdrift/pkg/terminal"
)

type runOptions struct {
	inline   bool
	duration time.Duration
	width    int
	height   int
}

func newRunCommand(configPath *string) *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run <demo>",
		Short: "Run a demo in the terminal",
		Long: `Run a demo full-screen. Press ctrl+c to quit.

When stdout is not a terminal, or with --inline, frames are printed in
place instead and no input is read.

Examples:
  termdrift run counter
  termdrift run velocity --inline --duration 3s`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, args[0], *configPath, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.inline, "inline", false, "print frames in place instead of taking over the screen")
	cmd.Flags().DurationVar(&opts.duration, "duration", 0, "stop after this long (0 runs until interrupted)")
	cmd.Flags().IntVar(&opts.width, "width", 80, "inline frame width")
	cmd.Flags().IntVar(&opts.height, "height", 24, "inline frame height")
	return cmd
}

func engineOptions(cfg *config.Resolved) []engine.Option {
	opts := []engine.Option{
		engine.WithTickInterval(cfg.TickInterval),
		engine.WithMaxFPS(cfg.MaxFPS),
	}
	if cfg.Debug != "" {
		opts = append(opts, engine.WithDebugServer(cfg.Debug))
	}
	return opts
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func runDemo(cmd *cobra.Command, name, configPath string, opts runOptions) error {
	demo, err := lookupDemo(name)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if opts.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.duration)
		defer cancel()
	}

	if opts.inline || !stdoutIsTerminal() {
		closeLog, err := setupLogging(cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer closeLog()

		term := terminal.NewInline(cmd.OutOrStdout(), opts.width, opts.height)
		eng := engine.New(demo.Root, term, engineOptions(cfg)...)
		defer eng.Close()
		return eng.Run(ctx, nil)
	}

	closeLog, err := setupLogging(cfg, nil)
	if err != nil {
		return err
	}
	defer closeLog()

	screen, err := terminal.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	eng := engine.New(demo.Root, screen, engineOptions(cfg)...)
	defer eng.Close()
	return eng.Run(ctx, screen.Events(ctx))
}
