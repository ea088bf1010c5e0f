// Package main implements the entry point for the phonestore API server,
// a read-only HTTP API over the storefront's product catalog.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/phonestore-api/internal/config"
	"github.com/phrazzld/phonestore-api/internal/platform/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("phonestore-api: %v", err)
	}
}

// run loads configuration, sets up logging, wires the application and serves
// HTTP until a shutdown signal arrives.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("images_dir", cfg.Static.ImagesDir))

	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
