// Package sqliterepo implements the repositories on SQLite through the
// pure-Go modernc.org/sqlite driver.
package sqliterepo

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"procurement-search/db/migrations"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver
)

// Open opens (creating if needed) the database at path and applies pending
// migrations.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := Connect(ctx, path)
	if err != nil {
		return nil, err
	}

	if err := migrations.Up(ctx, goose.DialectSQLite3, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Connect opens the database at path without touching the schema.
func Connect(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}
