package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open opens and pings the catalog database
func Open(ctx context.Context, connStr string) (*sql.DB, error) {
	if connStr == "" {
		return nil, fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}

	conn, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Test the connection
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("✓ Database connection established successfully")
	return conn, nil
}

// schema creates the catalog tables when missing
var schema = []string{
	`CREATE TABLE IF NOT EXISTS additionals (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		price      NUMERIC(10,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category    TEXT NOT NULL DEFAULT '',
		image_url   TEXT NOT NULL DEFAULT '',
		price       NUMERIC(10,2),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS product_variations (
		product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		position   INT NOT NULL,
		name       TEXT NOT NULL,
		price      NUMERIC(10,2) NOT NULL,
		PRIMARY KEY (product_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS product_additionals (
		product_id    TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		additional_id TEXT NOT NULL REFERENCES additionals(id) ON DELETE CASCADE,
		position      INT NOT NULL,
		PRIMARY KEY (product_id, additional_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products (category)`,
}

// EnsureSchema creates the catalog tables if they do not exist yet
func EnsureSchema(ctx context.Context, conn *sql.DB) error {
	for _, stmt := range schema {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	log.Printf("✓ Database schema ready")
	return nil
}
