// Package postgres provides PostgreSQL-based storage implementations for
// grantqa services. It works against a plain PostgreSQL server or a Supabase
// project's database.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// DB represents a PostgreSQL connection pool.
type DB struct {
	db  *sql.DB
	dsn string
}

// NewDB creates a new DB instance for the given connection string.
func NewDB(dsn string) *DB {
	return &DB{dsn: dsn}
}

// Open opens the connection pool and creates the schema if needed.
// An existing grant_metadata table is left untouched.
func (db *DB) Open() error {
	conn, err := sql.Open("postgres", db.dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the connection pool.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS grant_metadata (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			details TEXT,
			link TEXT NOT NULL,
			category TEXT,
			subcategory TEXT,
			content_hash TEXT UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`

	_, err := db.db.Exec(schema)
	return err
}
