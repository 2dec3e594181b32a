package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schemaStatements are executed in order at startup. All statements are
// idempotent so repeated boots against the same database are safe.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS creators (
		id BIGSERIAL PRIMARY KEY,
		display_name TEXT NOT NULL,
		description TEXT,
		avatar_url TEXT,
		status TEXT NOT NULL DEFAULT 'active',
		viewers BIGINT NOT NULL DEFAULT 0,
		is_featured BOOLEAN NOT NULL DEFAULT FALSE,
		featured_priority BIGINT NOT NULL DEFAULT 0,
		is_paid_member BOOLEAN NOT NULL DEFAULT FALSE,
		platforms JSONB NOT NULL DEFAULT '[]'::jsonb,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_creators_created_at ON creators (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_creators_featured ON creators (is_featured DESC, display_name ASC)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates the tables and indexes required by the API if they
// do not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
