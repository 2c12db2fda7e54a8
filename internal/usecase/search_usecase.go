package usecase

import (
	"context"
	"fmt"
	"time"

	"procurement-search/internal/domain"
	"procurement-search/pkg/logger"
	"procurement-search/pkg/utils"
)

type searchUsecase struct {
	recordRepo domain.RecordRepository
	buyerRepo  domain.BuyerRepository
	timeout    time.Duration
}

func NewSearchUsecase(recordRepo domain.RecordRepository, buyerRepo domain.BuyerRepository, timeout time.Duration) domain.SearchUsecase {
	return &searchUsecase{
		recordRepo: recordRepo,
		buyerRepo:  buyerRepo,
		timeout:    timeout,
	}
}

// Search returns one page of records. It fetches one row more than asked
// for; that row only tells whether another page exists and is never
// returned.
func (u *searchUsecase) Search(ctx context.Context, req domain.SearchRequest) (domain.SearchResponse, error) {
	if err := validateSearchRequest(req); err != nil {
		return domain.SearchResponse{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	rows, err := u.recordRepo.Search(ctx, domain.RecordFilter{
		TextSearch: req.TextSearch,
		BuyerID:    req.BuyerID,
		Limit:      req.Limit + 1,
		Offset:     req.Offset,
	})
	if err != nil {
		return domain.SearchResponse{}, fmt.Errorf("search records: %w", err)
	}

	page := rows
	if len(page) > req.Limit {
		page = page[:req.Limit]
	}

	records, err := u.SerializeRecords(ctx, page)
	if err != nil {
		return domain.SearchResponse{}, err
	}

	logger.WithContext(ctx).Debug().
		Str("text", req.TextSearch).
		Str("buyer_id", req.BuyerID).
		Int("offset", req.Offset).
		Int("limit", req.Limit).
		Int("returned", len(records)).
		Msg("Record search")

	return domain.SearchResponse{
		Records:      records,
		EndOfResults: len(rows) <= req.Limit,
	}, nil
}

// SerializeRecords converts records to DTOs, resolving all of their buyers
// with a single lookup. Output order matches input order. Any unresolved
// buyer fails the whole call.
func (u *searchUsecase) SerializeRecords(ctx context.Context, records []domain.ProcurementRecord) ([]domain.ProcurementRecordDto, error) {
	if len(records) == 0 {
		return []domain.ProcurementRecordDto{}, nil
	}

	buyerIDs := make([]string, len(records))
	for i, r := range records {
		buyerIDs[i] = r.BuyerID
	}

	buyers, err := u.buyerRepo.GetByIDs(ctx, utils.UniqueStrings(buyerIDs))
	if err != nil {
		return nil, fmt.Errorf("load buyers: %w", err)
	}

	buyersByID := make(map[string]domain.Buyer, len(buyers))
	for _, b := range buyers {
		buyersByID[b.ID] = b
	}

	out := make([]domain.ProcurementRecordDto, 0, len(records))
	for _, r := range records {
		b, ok := buyersByID[r.BuyerID]
		if !ok {
			return nil, fmt.Errorf("%w: buyer %s was not pre-fetched when loading record %s", domain.ErrBuyerNotResolved, r.BuyerID, r.ID)
		}
		out = append(out, domain.NewProcurementRecordDto(r, b))
	}
	return out, nil
}
