// Package main starts the QRNG HTTP daemon: environment-driven
// configuration, a shared pipeline instance, and signal-aware shutdown.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"

	"github.com/katalvlaran/qrngsim/httpapi"
	"github.com/katalvlaran/qrngsim/pipeline"
)

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))

	if err := run(); err != nil {
		slog.Error("qrngd failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := httpapi.ParseConfig()
	if err != nil {
		return err
	}

	pipe, err := pipeline.New(pipeline.DefaultOptions())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return httpapi.New(cfg, pipe, slog.Default()).Serve(ctx)
}
