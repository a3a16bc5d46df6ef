package database

import (
	"context"
	"database/sql"
	"fmt"
)

// There is no migration system; the schema is created in-process at
// startup and changes require manual intervention.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		price NUMERIC(12,2) NOT NULL,
		stock INTEGER NOT NULL,
		image_url TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		hashed_password TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		product_id INTEGER NOT NULL REFERENCES products (id),
		quantity INTEGER NOT NULL
	)`,
}

// EnsureSchema creates the three tables if they are absent.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
