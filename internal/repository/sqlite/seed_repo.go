package sqliterepo

import (
	"context"
	"database/sql"
	"fmt"

	"procurement-search/internal/domain"
)

type seedRepository struct {
	db *sql.DB
}

func NewSeedRepository(db *sql.DB) domain.SeedRepository {
	return &seedRepository{db: db}
}

const upsertBuyerSQL = `
	INSERT INTO buyers (id, name) VALUES (?, ?)
	ON CONFLICT(id) DO UPDATE SET name = excluded.name`

const upsertRecordSQL = `
	INSERT INTO procurement_records
		(id, title, description, publish_date, value, currency, stage, close_date, award_date, buyer_id)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		title = excluded.title,
		description = excluded.description,
		publish_date = excluded.publish_date,
		value = excluded.value,
		currency = excluded.currency,
		stage = excluded.stage,
		close_date = excluded.close_date,
		award_date = excluded.award_date,
		buyer_id = excluded.buyer_id`

func (r *seedRepository) UpsertBuyers(ctx context.Context, buyers []domain.Buyer) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, upsertBuyerSQL)
		if err != nil {
			return fmt.Errorf("prepare buyer upsert: %w", err)
		}
		defer stmt.Close()

		for _, b := range buyers {
			if _, err := stmt.ExecContext(ctx, b.ID, b.Name); err != nil {
				return fmt.Errorf("upsert buyer %s: %w", b.ID, err)
			}
		}
		return nil
	})
}

func (r *seedRepository) UpsertRecords(ctx context.Context, records []domain.ProcurementRecord) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, upsertRecordSQL)
		if err != nil {
			return fmt.Errorf("prepare record upsert: %w", err)
		}
		defer stmt.Close()

		for _, rec := range records {
			if _, err := stmt.ExecContext(ctx,
				rec.ID, rec.Title, rec.Description, rec.PublishDate.UTC(), rec.Value.InexactFloat64(),
				rec.Currency, string(rec.Stage), ptrToNullTime(rec.CloseDate), ptrToNullTime(rec.AwardDate), rec.BuyerID,
			); err != nil {
				return fmt.Errorf("upsert record %s: %w", rec.ID, err)
			}
		}
		return nil
	})
}

func (r *seedRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
