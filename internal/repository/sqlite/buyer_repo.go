package sqliterepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"procurement-search/internal/domain"
	"procurement-search/internal/repository/query"
	"procurement-search/pkg/logger"
)

type buyerRepository struct {
	db *sql.DB
}

func NewBuyerRepository(db *sql.DB) domain.BuyerRepository {
	return &buyerRepository{db: db}
}

func (r *buyerRepository) List(ctx context.Context) ([]domain.Buyer, error) {
	return r.query(ctx, query.Statement{SQL: query.ListBuyers})
}

func (r *buyerRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Buyer, error) {
	if len(ids) == 0 {
		return []domain.Buyer{}, nil
	}
	return r.query(ctx, query.BuyersByIDs(query.SQLite, ids))
}

func (r *buyerRepository) query(ctx context.Context, st query.Statement) ([]domain.Buyer, error) {
	start := time.Now()
	rows, err := r.db.QueryContext(ctx, st.SQL, st.Args...)
	if err != nil {
		logger.DBQuery(ctx, st.SQL, time.Since(start), err)
		return nil, fmt.Errorf("query buyers: %w", err)
	}
	defer rows.Close()

	buyers := []domain.Buyer{}
	for rows.Next() {
		var b domain.Buyer
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("scan buyer: %w", err)
		}
		buyers = append(buyers, b)
	}
	err = rows.Err()
	logger.DBQuery(ctx, st.SQL, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("iterate buyers: %w", err)
	}
	return buyers, nil
}
