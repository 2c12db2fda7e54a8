package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stage is the lifecycle stage of a procurement record.
type Stage string

func (s Stage) Valid() bool {
	for _, st := range Stages {
		if s == st {
			return true
		}
	}
	return false
}

// ProcurementRecord is a tender or awarded contract as stored.
type ProcurementRecord struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	PublishDate time.Time       `json:"publishDate"`
	Value       decimal.Decimal `json:"value"`
	Currency    string          `json:"currency"`
	Stage       Stage           `json:"stage"`
	CloseDate   *time.Time      `json:"closeDate,omitempty"`
	AwardDate   *time.Time      `json:"awardDate,omitempty"`
	BuyerID     string          `json:"buyerId"`
}

// ProcurementRecordDto is the API shape of a record with its buyer attached.
// close_date and award_date keep the snake_case names the web client reads.
type ProcurementRecordDto struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	PublishDate time.Time  `json:"publishDate"`
	Value       float64    `json:"value"`
	Currency    string     `json:"currency"`
	Stage       Stage      `json:"stage"`
	CloseDate   *time.Time `json:"close_date"`
	AwardDate   *time.Time `json:"award_date"`
	Buyer       BuyerDto   `json:"buyer"`
}

// NewProcurementRecordDto attaches an already resolved buyer to a record.
func NewProcurementRecordDto(r ProcurementRecord, b Buyer) ProcurementRecordDto {
	return ProcurementRecordDto{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		PublishDate: r.PublishDate,
		Value:       r.Value.InexactFloat64(),
		Currency:    r.Currency,
		Stage:       r.Stage,
		CloseDate:   r.CloseDate,
		AwardDate:   r.AwardDate,
		Buyer:       b.ToDto(),
	}
}
