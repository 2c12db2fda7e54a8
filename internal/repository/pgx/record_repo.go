package pgxrepo

import (
	"context"
	"fmt"
	"time"

	"procurement-search/internal/domain"
	"procurement-search/internal/repository/query"
	"procurement-search/pkg/logger"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type recordRepository struct {
	db *pgxpool.Pool
}

func NewRecordRepository(db *pgxpool.Pool) domain.RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) Search(ctx context.Context, filter domain.RecordFilter) ([]domain.ProcurementRecord, error) {
	st := query.RecordSearch(query.Postgres, filter)

	start := time.Now()
	rows, err := r.db.Query(ctx, st.SQL, st.Args...)
	if err != nil {
		logger.DBQuery(ctx, st.SQL, time.Since(start), err)
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.ProcurementRecord, 0, filter.Limit)
	for rows.Next() {
		var (
			rec       domain.ProcurementRecord
			stage     string
			value     pgtype.Numeric
			closeDate pgtype.Timestamptz
			awardDate pgtype.Timestamptz
		)
		if err := rows.Scan(
			&rec.ID, &rec.Title, &rec.Description, &rec.PublishDate, &value,
			&rec.Currency, &stage, &closeDate, &awardDate, &rec.BuyerID,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.Stage = domain.Stage(stage)
		rec.Value = numericToDecimal(value)
		rec.CloseDate = timestamptzToPtr(closeDate)
		rec.AwardDate = timestamptzToPtr(awardDate)
		records = append(records, rec)
	}
	err = rows.Err()
	logger.DBQuery(ctx, st.SQL, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return records, nil
}
