package postgres

import (
	"context"
	"fmt"
	"log/slog"

	// Registers the "pgx" database/sql driver.
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/phonestore-api/internal/config"
	"github.com/phrazzld/phonestore-api/internal/redact"
)

// DriverName is the database/sql driver used for PostgreSQL connections.
const DriverName = "pgx"

// Open creates the connection pool described by cfg and verifies it with a
// ping bounded by cfg.PingTimeout. The caller owns the returned pool and must
// Close it on shutdown.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sqlx.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sqlx.Open(DriverName, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %s", redact.Error(err))
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %s", redact.Error(err))
	}

	logger.Info("database connection established",
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.MaxIdleConns),
		slog.Duration("conn_max_lifetime", cfg.ConnMaxLifetime))
	return db, nil
}
