// Package db provides the Postgres connection pool for the accounts store.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/wil-ckaew/contas-api/internal/config"

	// Import postgres driver for registration with database/sql
	_ "github.com/lib/pq"
)

// pingTimeout bounds the startup reachability check so a bad DSN fails
// fast instead of stalling the boot sequence.
const pingTimeout = 5 * time.Second

// DB wraps the database connection pool
type DB struct {
	*sql.DB
	logger *slog.Logger
}

// Connect opens the accounts database, applies the pool limits from
// configuration and verifies reachability before returning.
func Connect(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	logger.Info("opening accounts database",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.DBName,
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)

	pool, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open accounts database: %w", err)
	}

	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.PingContext(pingCtx); err != nil {
		pool.Close()
		logger.Error("accounts database unreachable", "error", err)
		return nil, fmt.Errorf("failed to ping accounts database: %w", err)
	}

	logger.Info("accounts database ready", "conn_max_lifetime", cfg.ConnMaxLifetime)

	return &DB{
		DB:     pool,
		logger: logger,
	}, nil
}

// Close closes the database connection and logs the closure.
func (db *DB) Close() error {
	db.logger.Info("closing accounts database connection")
	return db.DB.Close()
}
