package pgxrepo

import (
	"context"
	"fmt"

	"procurement-search/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type seedRepository struct {
	db *pgxpool.Pool
}

func NewSeedRepository(db *pgxpool.Pool) domain.SeedRepository {
	return &seedRepository{db: db}
}

const upsertBuyerSQL = `
	INSERT INTO buyers (id, name) VALUES ($1, $2)
	ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`

const upsertRecordSQL = `
	INSERT INTO procurement_records
		(id, title, description, publish_date, value, currency, stage, close_date, award_date, buyer_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (id) DO UPDATE SET
		title = EXCLUDED.title,
		description = EXCLUDED.description,
		publish_date = EXCLUDED.publish_date,
		value = EXCLUDED.value,
		currency = EXCLUDED.currency,
		stage = EXCLUDED.stage,
		close_date = EXCLUDED.close_date,
		award_date = EXCLUDED.award_date,
		buyer_id = EXCLUDED.buyer_id`

func (r *seedRepository) UpsertBuyers(ctx context.Context, buyers []domain.Buyer) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, b := range buyers {
			batch.Queue(upsertBuyerSQL, b.ID, b.Name)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("upsert buyers: %w", err)
		}
		return nil
	})
}

func (r *seedRepository) UpsertRecords(ctx context.Context, records []domain.ProcurementRecord) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, rec := range records {
			batch.Queue(upsertRecordSQL,
				rec.ID, rec.Title, rec.Description, rec.PublishDate, decimalToNumeric(rec.Value),
				rec.Currency, string(rec.Stage), ptrToTimestamptz(rec.CloseDate), ptrToTimestamptz(rec.AwardDate), rec.BuyerID,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("upsert records: %w", err)
		}
		return nil
	})
}
