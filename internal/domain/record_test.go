package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStageValid(t *testing.T) {
	assert.True(t, StageTender.Valid())
	assert.True(t, StageContract.Valid())
	assert.False(t, Stage("tender").Valid())
	assert.False(t, Stage("").Valid())
}

func TestRecordFilterHasBuyer(t *testing.T) {
	assert.False(t, RecordFilter{}.HasBuyer())
	assert.False(t, RecordFilter{BuyerID: AllBuyers}.HasBuyer())
	assert.True(t, RecordFilter{BuyerID: "B1"}.HasBuyer())
}

func TestNewProcurementRecordDto(t *testing.T) {
	published := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	closing := published.AddDate(0, 1, 0)

	rec := ProcurementRecord{
		ID:          "R1",
		Title:       "Road resurfacing",
		Description: "A40 works",
		PublishDate: published,
		Value:       decimal.RequireFromString("125000.50"),
		Currency:    "GBP",
		Stage:       StageTender,
		CloseDate:   &closing,
		BuyerID:     "B1",
	}

	dto := NewProcurementRecordDto(rec, Buyer{ID: "B1", Name: "Acme"})

	assert.Equal(t, "R1", dto.ID)
	assert.Equal(t, 125000.50, dto.Value)
	assert.Equal(t, &closing, dto.CloseDate)
	assert.Nil(t, dto.AwardDate)
	assert.Equal(t, BuyerDto{ID: "B1", Name: "Acme"}, dto.Buyer)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("limit", "Limit must be between 1 and 100.")
	assert.EqualError(t, err, "Limit must be between 1 and 100.")
	assert.Equal(t, "limit", err.Field)
}
