package usecase

import (
	"context"
	"fmt"
	"time"

	"procurement-search/internal/domain"
)

type buyerUsecase struct {
	buyerRepo domain.BuyerRepository
	timeout   time.Duration
}

func NewBuyerUsecase(buyerRepo domain.BuyerRepository, timeout time.Duration) domain.BuyerUsecase {
	return &buyerUsecase{buyerRepo: buyerRepo, timeout: timeout}
}

// ListBuyers returns every buyer row, including buyers with no records.
func (u *buyerUsecase) ListBuyers(ctx context.Context) ([]domain.BuyerDto, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	buyers, err := u.buyerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list buyers: %w", err)
	}

	out := make([]domain.BuyerDto, len(buyers))
	for i, b := range buyers {
		out[i] = b.ToDto()
	}
	return out, nil
}
