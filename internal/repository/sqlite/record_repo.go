package sqliterepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"procurement-search/internal/domain"
	"procurement-search/internal/repository/query"
	"procurement-search/pkg/logger"

	"github.com/shopspring/decimal"
)

type recordRepository struct {
	db *sql.DB
}

func NewRecordRepository(db *sql.DB) domain.RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) Search(ctx context.Context, filter domain.RecordFilter) ([]domain.ProcurementRecord, error) {
	st := query.RecordSearch(query.SQLite, filter)

	start := time.Now()
	rows, err := r.db.QueryContext(ctx, st.SQL, st.Args...)
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
			value     float64
			publish   sql.NullTime
			closeDate sql.NullTime
			awardDate sql.NullTime
		)
		if err := rows.Scan(
			&rec.ID, &rec.Title, &rec.Description, &publish, &value,
			&rec.Currency, &stage, &closeDate, &awardDate, &rec.BuyerID,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.PublishDate = publish.Time
		rec.Value = decimal.NewFromFloat(value)
		rec.Stage = domain.Stage(stage)
		rec.CloseDate = nullTimeToPtr(closeDate)
		rec.AwardDate = nullTimeToPtr(awardDate)
		records = append(records, rec)
	}
	err = rows.Err()
	logger.DBQuery(ctx, st.SQL, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return records, nil
}

func nullTimeToPtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func ptrToNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
