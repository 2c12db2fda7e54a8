package pgxrepo

import (
	"context"
	"fmt"
	"time"

	"procurement-search/internal/domain"
	"procurement-search/internal/repository/query"
	"procurement-search/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type buyerRepository struct {
	db *pgxpool.Pool
}

func NewBuyerRepository(db *pgxpool.Pool) domain.BuyerRepository {
	return &buyerRepository{db: db}
}

func (r *buyerRepository) List(ctx context.Context) ([]domain.Buyer, error) {
	return r.query(ctx, query.Statement{SQL: query.ListBuyers})
}

func (r *buyerRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Buyer, error) {
	if len(ids) == 0 {
		return []domain.Buyer{}, nil
	}
	return r.query(ctx, query.BuyersByIDs(query.Postgres, ids))
}

func (r *buyerRepository) query(ctx context.Context, st query.Statement) ([]domain.Buyer, error) {
	start := time.Now()
	rows, err := r.db.Query(ctx, st.SQL, st.Args...)
	if err != nil {
		logger.DBQuery(ctx, st.SQL, time.Since(start), err)
		return nil, fmt.Errorf("query buyers: %w", err)
	}

	buyers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Buyer, error) {
		var b domain.Buyer
		err := row.Scan(&b.ID, &b.Name)
		return b, err
	})
	logger.DBQuery(ctx, st.SQL, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("collect buyers: %w", err)
	}
	return buyers, nil
}
