//go:build integration

package pgxrepo

// Runs the PostgreSQL repositories against a real server.
// Run with: go test -tags integration ./internal/repository/pgx/... -v

import (
	"context"
	"fmt"
	"testing"
	"time"

	"procurement-search/config"
	"procurement-search/db/migrations"
	"procurement-search/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("records_test"),
		tcPostgres.WithUsername("records"),
		tcPostgres.WithPassword("records"),
		testcontainers.WithWaitStrategy(tcPostgres.BasicWaitStrategies()...),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := NewPgxPool(ctx, &config.Config{DBUrl: dsn, DBMaxConns: 4, DBMinConns: 1, DBMaxConnIdleTime: time.Minute})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	db := stdlib.OpenDBFromPool(pool)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Up(ctx, goose.DialectPostgres, db))

	return pool
}

func TestPostgresRepositories(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()

	seeds := NewSeedRepository(pool)
	require.NoError(t, seeds.UpsertBuyers(ctx, []domain.Buyer{{ID: "B1", Name: "Acme"}, {ID: "B2", Name: "Globex"}}))

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	var records []domain.ProcurementRecord
	for i := 1; i <= 5; i++ {
		records = append(records, domain.ProcurementRecord{
			ID:          fmt.Sprintf("R%d", i),
			Title:       fmt.Sprintf("Road works lot %d", i),
			PublishDate: base.AddDate(0, 0, i),
			Value:       decimal.RequireFromString("1250.75"),
			Currency:    "GBP",
			Stage:       domain.StageTender,
			BuyerID:     "B1",
		})
	}
	closing := base.AddDate(0, 2, 0)
	records = append(records, domain.ProcurementRecord{
		ID: "C1", Title: "Catering", Description: "Résumé of ROAD salt 100%", PublishDate: base,
		Value: decimal.NewFromInt(10), Currency: "EUR", Stage: domain.StageContract, CloseDate: &closing, BuyerID: "B2",
	})
	require.NoError(t, seeds.UpsertRecords(ctx, records))

	repo := NewRecordRepository(pool)

	t.Run("over-fetch pages", func(t *testing.T) {
		got, err := repo.Search(ctx, domain.RecordFilter{TextSearch: "road", BuyerID: "B1", Limit: 3})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "R5", got[0].ID)
		assert.True(t, decimal.RequireFromString("1250.75").Equal(got[0].Value))

		got, err = repo.Search(ctx, domain.RecordFilter{TextSearch: "road", BuyerID: "B1", Limit: 3, Offset: 4})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "R1", got[0].ID)
	})

	t.Run("case-insensitive description match", func(t *testing.T) {
		got, err := repo.Search(ctx, domain.RecordFilter{TextSearch: "résumé", Limit: 10})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.NotNil(t, got[0].CloseDate)
		assert.True(t, got[0].CloseDate.Equal(closing))
		assert.Nil(t, got[0].AwardDate)
	})

	t.Run("literal percent", func(t *testing.T) {
		got, err := repo.Search(ctx, domain.RecordFilter{TextSearch: "%", Limit: 10})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("buyers", func(t *testing.T) {
		buyers := NewBuyerRepository(pool)

		list, err := buyers.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.Buyer{{ID: "B1", Name: "Acme"}, {ID: "B2", Name: "Globex"}}, list)

		got, err := buyers.GetByIDs(ctx, []string{"B2"})
		require.NoError(t, err)
		assert.Equal(t, []domain.Buyer{{ID: "B2", Name: "Globex"}}, got)
	})
}
