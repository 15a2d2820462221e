package infra

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Collection tables. Loans keep the full application as a JSONB document with
// the filtering/ordering fields promoted to columns. The unique index on
// username is what makes concurrent duplicate registrations safe.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
        id            TEXT PRIMARY KEY,
        username      TEXT NOT NULL UNIQUE,
        phone         TEXT NOT NULL DEFAULT '',
        email         TEXT NOT NULL DEFAULT '',
        password_hash BYTEA NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS loans (
        id         TEXT PRIMARY KEY,
        loan_type  TEXT NOT NULL CHECK (loan_type <> ''),
        full_name  TEXT NOT NULL DEFAULT '',
        status     TEXT NOT NULL,
        applied_at TIMESTAMPTZ NOT NULL,
        document   JSONB NOT NULL
    )`,
	`CREATE INDEX IF NOT EXISTS loans_full_name_idx ON loans (full_name)`,
	`CREATE INDEX IF NOT EXISTS loans_applied_at_idx ON loans (applied_at DESC)`,
	`CREATE TABLE IF NOT EXISTS contacts (
        id      TEXT PRIMARY KEY,
        name    TEXT NOT NULL CHECK (name <> ''),
        email   TEXT NOT NULL CHECK (email <> ''),
        phone   TEXT NOT NULL CHECK (phone <> ''),
        subject TEXT NOT NULL CHECK (subject <> ''),
        message TEXT NOT NULL CHECK (message <> ''),
        sent_at TIMESTAMPTZ NOT NULL
    )`,
}

// EnsureSchema creates the collection tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
