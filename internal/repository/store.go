// Package repository opens the storage backend selected by configuration.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"procurement-search/config"
	"procurement-search/db/migrations"
	"procurement-search/internal/domain"
	"procurement-search/internal/repository/memory"
	pgxrepo "procurement-search/internal/repository/pgx"
	sqliterepo "procurement-search/internal/repository/sqlite"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Store bundles the repositories of one backend with its lifecycle hooks.
type Store struct {
	Records domain.RecordRepository
	Buyers  domain.BuyerRepository
	Seeds   domain.SeedRepository

	ping  func(ctx context.Context) error
	close func()
}

func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// NewMemoryStore wraps a memory.Store. Used by the memory driver and tests.
func NewMemoryStore(m *memory.Store) *Store {
	return &Store{Records: m, Buyers: m, Seeds: m}
}

// Open connects to the backend named by cfg.DBDriver. SQLite databases are
// migrated on open; PostgreSQL schemas are managed with `recordsctl migrate`.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		pool, err := pgxrepo.NewPgxPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &Store{
			Records: pgxrepo.NewRecordRepository(pool),
			Buyers:  pgxrepo.NewBuyerRepository(pool),
			Seeds:   pgxrepo.NewSeedRepository(pool),
			ping:    pool.Ping,
			close:   pool.Close,
		}, nil

	case config.DriverSQLite:
		db, err := sqliterepo.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Store{
			Records: sqliterepo.NewRecordRepository(db),
			Buyers:  sqliterepo.NewBuyerRepository(db),
			Seeds:   sqliterepo.NewSeedRepository(db),
			ping:    db.PingContext,
			close:   func() { _ = db.Close() },
		}, nil

	case config.DriverMemory:
		return NewMemoryStore(memory.NewStore()), nil
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
}

// Migration commands accepted by Migrate.
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

// Migrate runs a goose command against the configured SQL backend and
// reports what it did to out.
func Migrate(ctx context.Context, cfg *config.Config, command string, out io.Writer) error {
	var (
		db      *sql.DB
		dialect goose.Dialect
	)

	switch cfg.DBDriver {
	case config.DriverPostgres:
		pool, err := pgxrepo.NewPgxPool(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()
		db = stdlib.OpenDBFromPool(pool)
		dialect = goose.DialectPostgres
	case config.DriverSQLite:
		var err error
		db, err = sqliterepo.Connect(ctx, cfg.SQLitePath)
		if err != nil {
			return err
		}
		dialect = goose.DialectSQLite3
	default:
		return fmt.Errorf("driver %q has no schema to migrate", cfg.DBDriver)
	}
	defer db.Close()

	p, err := migrations.NewProvider(dialect, db)
	if err != nil {
		return err
	}

	switch command {
	case MigrateUp:
		results, err := p.Up(ctx)
		if err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
		if len(results) == 0 {
			fmt.Fprintln(out, "no pending migrations")
		}
		for _, r := range results {
			fmt.Fprintf(out, "applied %s (%s)\n", r.Source.Path, r.Duration)
		}
	case MigrateDown:
		r, err := p.Down(ctx)
		if err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
		fmt.Fprintf(out, "rolled back %s\n", r.Source.Path)
	case MigrateStatus:
		statuses, err := p.Status(ctx)
		if err != nil {
			return fmt.Errorf("migrate status: %w", err)
		}
		for _, s := range statuses {
			fmt.Fprintf(out, "%05d %-10s %s\n", s.Source.Version, s.State, s.Source.Path)
		}
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}
	return nil
}
