// Package db provides PostgreSQL database access for the recruitment store:
// job positions, candidates, applications, and AI interviews.
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

// EnsureSchema creates the recruitment tables if they do not exist yet.
// Column updates are last-writer-wins; concurrency control happens at the
// handler level by re-checking gates against a freshly read snapshot.
func (db *DB) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS positions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			must_have JSONB NOT NULL DEFAULT '[]',
			nice_to_have JSONB NOT NULL DEFAULT '[]',
			must_have_weight DOUBLE PRECISION NOT NULL DEFAULT 0.6,
			nice_to_have_weight DOUBLE PRECISION NOT NULL DEFAULT 0.25,
			experience_cap_years DOUBLE PRECISION,
			task_description TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS candidates (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			full_name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			phone TEXT,
			city TEXT,
			cv_text TEXT,
			profile JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS applications (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			candidate_id UUID NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
			position_id UUID NOT NULL REFERENCES positions(id) ON DELETE CASCADE,
			technical_score DOUBLE PRECISION,
			score_breakdown JSONB,
			task_status TEXT,
			task_score INT,
			decision TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (candidate_id, position_id)
		)`,
		`CREATE TABLE IF NOT EXISTS interviews (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			application_id UUID NOT NULL REFERENCES applications(id) ON DELETE CASCADE,
			token UUID NOT NULL UNIQUE DEFAULT gen_random_uuid(),
			status TEXT NOT NULL DEFAULT 'scheduled',
			questions JSONB NOT NULL DEFAULT '[]',
			answers JSONB NOT NULL DEFAULT '[]',
			soft_skill_assessment JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_applications_position ON applications(position_id)`,
		`CREATE INDEX IF NOT EXISTS idx_interviews_application ON interviews(application_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
