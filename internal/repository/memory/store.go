// Package memory is an in-process implementation of the record, buyer and
// seed repositories. It backs the "memory" driver and the service tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"procurement-search/internal/domain"
	"procurement-search/pkg/utils"
)

type Store struct {
	mu      sync.RWMutex
	buyers  map[string]domain.Buyer
	records map[string]domain.ProcurementRecord
}

var (
	_ domain.RecordRepository = (*Store)(nil)
	_ domain.BuyerRepository  = (*Store)(nil)
	_ domain.SeedRepository   = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		buyers:  make(map[string]domain.Buyer),
		records: make(map[string]domain.ProcurementRecord),
	}
}

// Search applies the same filter and order as the SQL repositories.
func (s *Store) Search(ctx context.Context, f domain.RecordFilter) ([]domain.ProcurementRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	matched := make([]domain.ProcurementRecord, 0, len(s.records))
	for _, r := range s.records {
		if f.TextSearch != "" && !utils.ContainsFold(r.Title, f.TextSearch) && !utils.ContainsFold(r.Description, f.TextSearch) {
			continue
		}
		if f.HasBuyer() && r.BuyerID != f.BuyerID {
			continue
		}
		matched = append(matched, r)
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].PublishDate.Equal(matched[j].PublishDate) {
			return matched[i].PublishDate.After(matched[j].PublishDate)
		}
		return matched[i].ID < matched[j].ID
	})

	if f.Offset >= len(matched) {
		return []domain.ProcurementRecord{}, nil
	}
	end := len(matched)
	if f.Limit >= 0 && f.Offset+f.Limit < end {
		end = f.Offset + f.Limit
	}
	return matched[f.Offset:end], nil
}

func (s *Store) List(ctx context.Context) ([]domain.Buyer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	out := make([]domain.Buyer, 0, len(s.buyers))
	for _, b := range s.buyers {
		out = append(out, b)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) GetByIDs(ctx context.Context, ids []string) ([]domain.Buyer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Buyer, 0, len(ids))
	for _, id := range utils.UniqueStrings(ids) {
		if b, ok := s.buyers[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *Store) UpsertBuyers(_ context.Context, buyers []domain.Buyer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range buyers {
		s.buyers[b.ID] = b
	}
	return nil
}

func (s *Store) UpsertRecords(_ context.Context, records []domain.ProcurementRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		s.records[r.ID] = r
	}
	return nil
}
