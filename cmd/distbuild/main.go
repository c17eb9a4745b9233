package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/squidCatx/big-react-wasm/internal/config"
	"github.com/squidCatx/big-react-wasm/internal/pipeline"
	"github.com/squidCatx/big-react-wasm/internal/wasmpack"
	"github.com/squidCatx/big-react-wasm/internal/watch"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"distbuild.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build struct {
		Test bool `help:"Build for the node test runtime instead of the browser"`
	} `cmd:"" help:"Build the distributable package set"`

	Watch struct {
		Test     bool          `help:"Build for the node test runtime instead of the browser"`
		Debounce time.Duration `help:"Delay before rebuilding after a change" default:"500ms"`
	} `cmd:"" help:"Rebuild the package set whenever sources change"`
}

func main() {
	ctx := kong.Parse(&CLI)

	// Set up logging
	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	switch ctx.Command() {
	case "build":
		mode := config.ModeFor(CLI.Build.Test)
		p := pipeline.New(cfg, mode, wasmpack.NewExecBuilder(cfg.WasmPackBin))
		if err := p.Run(context.Background()); err != nil {
			slog.Error("Build failed", "error", err)
			os.Exit(1)
		}
	case "watch":
		mode := config.ModeFor(CLI.Watch.Test)
		p := pipeline.New(cfg, mode, wasmpack.NewExecBuilder(cfg.WasmPackBin))
		if err := runWatch(cfg, p, CLI.Watch.Debounce); err != nil {
			slog.Error("Watch failed", "error", err)
			os.Exit(1)
		}
	default:
		slog.Error("Unknown command", "command", ctx.Command())
		os.Exit(1)
	}
}

// runWatch runs the rebuild loop until SIGINT/SIGTERM.
func runWatch(cfg *config.Config, p *pipeline.Pipeline, debounce time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := watch.New(cfg.PackagesDir, debounce, p.Run)
	if err := w.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	slog.Info("Watch stopped")
	return nil
}
