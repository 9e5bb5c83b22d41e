package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectPostgres opens a pool, pings it and makes sure the schema exists.
func ConnectPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing DATABASE_URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres connection failed: %w", err)
	}

	slog.Info("connected to postgres", "host", config.ConnConfig.Host, "database", config.ConnConfig.Database)

	if err := InitSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return db, nil
}

// InitSchema creates the catalog tables when missing.
func InitSchema(ctx context.Context, db *pgxpool.Pool) error {

	// -------------------------------
	// DESTINATIONS
	// -------------------------------
	destinationsSQL := `
		CREATE TABLE IF NOT EXISTS destinations (
			id VARCHAR(100) PRIMARY KEY,
			sort_order INTEGER NOT NULL DEFAULT 0,
			name VARCHAR(255) NOT NULL,
			state VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			image VARCHAR(500) NOT NULL DEFAULT '',
			best_time_to_visit VARCHAR(255) NOT NULL DEFAULT '',
			average_budget JSONB NOT NULL,
			attractions JSONB NOT NULL DEFAULT '[]',
			transport_options JSONB NOT NULL DEFAULT '[]',
			accommodations JSONB NOT NULL DEFAULT '[]',
			weather JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, destinationsSQL); err != nil {
		return err
	}

	// -------------------------------
	// CATALOG ORDER
	// -------------------------------
	sortIndexSQL := `
		CREATE INDEX IF NOT EXISTS destinations_sort_order_idx
		ON destinations (sort_order, id)
	`
	if _, err := db.Exec(ctx, sortIndexSQL); err != nil {
		return err
	}

	slog.Info("schema initialized")
	return nil
}
