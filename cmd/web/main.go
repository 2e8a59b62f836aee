// Command web serves the upload API: workbooks are posted as multipart
// batches, cleaned synchronously and returned as JSON or a combined CSV.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"voclab/internal/app"
	"voclab/internal/config"
	"voclab/internal/infrastructure"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("failed to initialize logger", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, logger)
	if err := a.Run(ctx); err != nil {
		logger.Error("server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
