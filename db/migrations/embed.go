// Package migrations embeds the goose SQL migrations for each dialect.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// NewProvider returns a goose provider over the migrations for dialect.
func NewProvider(dialect goose.Dialect, db *sql.DB) (*goose.Provider, error) {
	var dir string
	switch dialect {
	case goose.DialectPostgres:
		dir = "postgres"
	case goose.DialectSQLite3:
		dir = "sqlite"
	default:
		return nil, fmt.Errorf("no migrations for dialect %q", dialect)
	}

	sub, err := fs.Sub(FS, dir)
	if err != nil {
		return nil, err
	}
	return goose.NewProvider(dialect, db, sub)
}

// Up applies all pending migrations.
func Up(ctx context.Context, dialect goose.Dialect, db *sql.DB) error {
	p, err := NewProvider(dialect, db)
	if err != nil {
		return err
	}
	if _, err := p.Up(ctx); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}
