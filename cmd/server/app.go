package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/phonestore-api/internal/config"
	"github.com/phrazzld/phonestore-api/internal/platform/postgres"
	"github.com/phrazzld/phonestore-api/internal/service"
	"github.com/phrazzld/phonestore-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sqlx.DB

	catalogStore   store.CatalogStore
	catalogService service.CatalogService
}

// newApplication opens the database pool and builds the application on top of it.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := postgres.Open(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	app, err := newApplicationWithDB(cfg, logger, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return app, nil
}

// newApplicationWithDB wires stores and services around an already opened pool.
func newApplicationWithDB(cfg *config.Config, logger *slog.Logger, db *sqlx.DB) (*application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	catalogStore := postgres.NewPostgresCatalogStore(db, logger)

	catalogService, err := service.NewCatalogService(catalogStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}

	return &application{
		config:         cfg,
		logger:         logger,
		db:             db,
		catalogStore:   catalogStore,
		catalogService: catalogService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("Failed to close database connection", "error", err)
		return
	}
	app.logger.Info("Database connection closed")
}
