package usecase

import (
	"context"

	"procurement-search/internal/domain"

	"github.com/stretchr/testify/mock"
)

type mockRecordRepo struct {
	mock.Mock
}

func (m *mockRecordRepo) Search(ctx context.Context, f domain.RecordFilter) ([]domain.ProcurementRecord, error) {
	args := m.Called(ctx, f)
	records, _ := args.Get(0).([]domain.ProcurementRecord)
	return records, args.Error(1)
}

type mockBuyerRepo struct {
	mock.Mock
}

func (m *mockBuyerRepo) List(ctx context.Context) ([]domain.Buyer, error) {
	args := m.Called(ctx)
	buyers, _ := args.Get(0).([]domain.Buyer)
	return buyers, args.Error(1)
}

func (m *mockBuyerRepo) GetByIDs(ctx context.Context, ids []string) ([]domain.Buyer, error) {
	args := m.Called(ctx, ids)
	buyers, _ := args.Get(0).([]domain.Buyer)
	return buyers, args.Error(1)
}
