package domain

import "context"

// SearchRequest is the decoded body of a record search.
type SearchRequest struct {
	TextSearch string `json:"textSearch"`
	BuyerID    string `json:"buyerId"`
	Limit      int    `json:"limit" validate:"min=1,max=100"`
	Offset     int    `json:"offset" validate:"min=0"`
}

// RecordFilter is what a RecordRepository executes. Limit is the number of
// rows to fetch, which for a search page is the requested limit plus one.
type RecordFilter struct {
	TextSearch string
	BuyerID    string
	Limit      int
	Offset     int
}

// HasBuyer reports whether the filter restricts results to a single buyer.
func (f RecordFilter) HasBuyer() bool {
	return f.BuyerID != "" && f.BuyerID != AllBuyers
}

type SearchResponse struct {
	Records      []ProcurementRecordDto `json:"records"`
	EndOfResults bool                   `json:"endOfResults"`
}

// RecordRepository returns records ordered by publish date (newest first),
// then id.
type RecordRepository interface {
	Search(ctx context.Context, filter RecordFilter) ([]ProcurementRecord, error)
}

// SeedRepository loads fixture data. It is only reachable from the operator CLI.
type SeedRepository interface {
	UpsertBuyers(ctx context.Context, buyers []Buyer) error
	UpsertRecords(ctx context.Context, records []ProcurementRecord) error
}

type SearchUsecase interface {
	Search(ctx context.Context, req SearchRequest) (SearchResponse, error)
	SerializeRecords(ctx context.Context, records []ProcurementRecord) ([]ProcurementRecordDto, error)
}
