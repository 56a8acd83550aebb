package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mochwana/aesi-web/internal/models"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS announcements (
	id INTEGER GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
	title TEXT NOT NULL,
	excerpt TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	image_url TEXT NOT NULL DEFAULT '',
	featured BOOLEAN NOT NULL DEFAULT FALSE
)`,
	`CREATE TABLE IF NOT EXISTS staff (
	id INTEGER GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
	name TEXT NOT NULL,
	title TEXT NOT NULL DEFAULT '',
	bio TEXT NOT NULL DEFAULT '',
	role TEXT NOT NULL,
	email TEXT NOT NULL DEFAULT '',
	linkedin_url TEXT NOT NULL DEFAULT '',
	image_url TEXT NOT NULL DEFAULT '',
	department TEXT
)`,
	`CREATE TABLE IF NOT EXISTS programs (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	image_url TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL DEFAULT 0
)`,
	`CREATE TABLE IF NOT EXISTS images (
	id UUID PRIMARY KEY,
	filename TEXT NOT NULL,
	url TEXT NOT NULL,
	category TEXT NOT NULL,
	size BIGINT NOT NULL DEFAULT 0,
	uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE INDEX IF NOT EXISTS idx_images_category ON images (category, uploaded_at DESC)`,
}

// EnsureSchema creates the tables when missing and seeds the fixed
// program set. Every statement is idempotent, so concurrent or repeated
// invocations are safe.
func EnsureSchema(ctx context.Context, db *sqlx.DB, programs []models.Program) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	const seed = `INSERT INTO programs (id, name, description, image_url, position)
VALUES ($1, $2, $3, $4, $5) ON CONFLICT (id) DO NOTHING`
	for i, p := range programs {
		if _, err := db.ExecContext(ctx, seed, p.ID, p.Name, p.Description, p.ImageURL, i); err != nil {
			return fmt.Errorf("seed program %s: %w", p.ID, err)
		}
	}
	return nil
}
