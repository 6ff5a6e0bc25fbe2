package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool builds the shared connection pool with the service's tuning.
func NewPool(ctx context.Context, dbURL string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// migrations is the full schema, applied idempotently on startup.
//
// challenges.creator is deliberately not a foreign key: it stores the
// Firebase UID as an opaque string and a challenge can outlive (or predate)
// its creator's account row.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		email         TEXT UNIQUE,
		firebase_uid  TEXT UNIQUE,
		password_hash TEXT,
		bronze_badges INT NOT NULL DEFAULT 0 CHECK (bronze_badges >= 0),
		silver_badges INT NOT NULL DEFAULT 0 CHECK (silver_badges >= 0),
		gold_badges   INT NOT NULL DEFAULT 0 CHECK (gold_badges >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS challenges (
		id          SERIAL PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT,
		goal        INT,
		unit        TEXT,
		difficulty  TEXT,
		start_date  DATE,
		end_date    DATE,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		creator     TEXT NOT NULL,
		goal_list   TEXT[]
	)`,
	`CREATE TABLE IF NOT EXISTS user_challenge_progress (
		id           SERIAL PRIMARY KEY,
		user_id      TEXT NOT NULL,
		challenge_id INT NOT NULL,
		current_day  INT NOT NULL DEFAULT 1,
		completed    BOOLEAN NOT NULL DEFAULT FALSE,
		last_updated TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, challenge_id)
	)`,
	`CREATE TABLE IF NOT EXISTS community_chat (
		id        SERIAL PRIMARY KEY,
		username  TEXT NOT NULL,
		text      TEXT,
		image_url TEXT,
		timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS favorites (
		user_id      INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		challenge_id INT NOT NULL REFERENCES challenges(id) ON DELETE CASCADE,
		PRIMARY KEY (user_id, challenge_id)
	)`,
	`CREATE TABLE IF NOT EXISTS goals (
		id           SERIAL PRIMARY KEY,
		user_id      INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title        TEXT NOT NULL,
		description  TEXT,
		is_completed BOOLEAN NOT NULL DEFAULT FALSE
	)`,
}

// Migrate applies the schema statements in order.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
