package domain

import "context"

// Buyer is an organization that issues procurement records.
type Buyer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (b Buyer) ToDto() BuyerDto {
	return BuyerDto{ID: b.ID, Name: b.Name}
}

type BuyerDto struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BuyersResponse struct {
	Buyers []BuyerDto `json:"buyers"`
}

type BuyerRepository interface {
	// List returns every buyer row ordered by name, then id.
	List(ctx context.Context) ([]Buyer, error)
	// GetByIDs returns the buyers whose ids are in ids. Unknown ids are skipped.
	GetByIDs(ctx context.Context, ids []string) ([]Buyer, error)
}

type BuyerUsecase interface {
	ListBuyers(ctx context.Context) ([]BuyerDto, error)
}
