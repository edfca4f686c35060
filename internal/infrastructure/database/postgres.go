package database

import (
	"context"
	"fmt"
	"log"
	"time"

	appconfig "appraisal_booking/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// DB wraps the sqlx handle for the Postgres job store.
type DB struct {
	*sqlx.DB
}

// ConnectPostgres opens and pings a Postgres connection pool.
func ConnectPostgres(ctx context.Context, dsn string, maxOpenConns int) (*DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database dsn is empty")
	}

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
		db.SetMaxIdleConns(maxOpenConns)
	}
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{db}, nil
}

// ConnectFromConfig opens the primary connection and, when configured, the fallback one
// used by the admin dashboard. A failing fallback is logged and skipped.
func ConnectFromConfig(ctx context.Context, cfg appconfig.DatabaseConfig) (primary *DB, fallback *DB, err error) {
	primary, err = ConnectPostgres(ctx, cfg.DSN, cfg.MaxOpenConns)
	if err != nil {
		return nil, nil, err
	}
	if cfg.FallbackDSN == "" {
		return primary, nil, nil
	}

	fallback, err = ConnectPostgres(ctx, cfg.FallbackDSN, 2)
	if err != nil {
		log.Printf("[database] fallback connection unavailable err=%v", err)
		return primary, nil, nil
	}
	return primary, fallback, nil
}

// HealthCheck performs a simple health check on the database
func (db *DB) HealthCheck(ctx context.Context) error {
	return db.PingContext(ctx)
}
