package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/input"
	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/platform/term"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func runPlay(cmd *cobra.Command, _ []string) {
	if err := play(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close of the log file
	defer closeLog()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	engine, err := snake.New(cfg.Board.Width, cfg.Board.Height, snake.WithSeed(seed))
	if err != nil {
		return err
	}
	logger.Debug("engine ready", "width", cfg.Board.Width, "height", cfg.Board.Height, "seed", seed, "ui", cfg.UI)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var result loop.Result
	switch cfg.UI {
	case config.UITea:
		result, err = tui.Run(ctx, engine, tui.Options{
			Tick:   cfg.Tick(),
			Glyphs: cfg.RenderGlyphs(),
			Color:  cfg.Color,
			Keymap: input.DefaultKeymap(),
			Logger: logger,
		})
	default:
		result, err = term.Play(ctx, engine, os.Stdin, os.Stdout, term.Options{
			Tick:   cfg.Tick(),
			Render: snake.RenderOptions{Glyphs: cfg.RenderGlyphs(), Hint: snake.DefaultHint},
			Color:  cfg.Color,
			Keymap: input.DefaultKeymap(),
			Logger: logger,
		})
	}
	if err != nil {
		return err
	}

	fmt.Println(snake.FinalMessage(result.Snapshot, result.Interrupted))
	return nil
}

// newLogger builds the application logger. The returned func closes the log
// file, if any.
func newLogger(cfg config.Config) (*log.Logger, func() error, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() error { return nil }
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", cfg.Log.File, err)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closeFn, nil
}
