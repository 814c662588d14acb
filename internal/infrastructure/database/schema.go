package database

import (
	"context"
	"fmt"
)

// Schema statements executed at startup so a fresh database works without a
// separate migration step. CREATE IF NOT EXISTS keeps them idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS counters (
		name           TEXT PRIMARY KEY,
		sequence_value BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS students (
		id          BIGINT PRIMARY KEY,
		full_name   TEXT NOT NULL,
		birth_date  TEXT NOT NULL,
		gender      TEXT NOT NULL,
		address     TEXT NOT NULL,
		social_link TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS api_keys (
		key_hash   TEXT PRIMARY KEY,
		active     BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// InitSchema creates the application tables if they are missing.
func (db *PostgresDB) InitSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}

	return nil
}
