// Package db provides PostgreSQL database access for skill-gap analysis storage.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping checks that the database is reachable
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// schemaStatements create the tables used by the advisor. Each statement is idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS skill_gap_analyses (
		id UUID PRIMARY KEY,
		target_position TEXT NOT NULL,
		overall_score DOUBLE PRECISION,
		readiness_level TEXT NOT NULL DEFAULT '',
		error TEXT NOT NULL DEFAULT '',
		requested_by UUID,
		report JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_skill_gap_analyses_position
		ON skill_gap_analyses (target_position, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_skill_gap_analyses_requested_by
		ON skill_gap_analyses (requested_by, created_at DESC)`,
}

// EnsureSchema creates the advisor tables if they do not exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
