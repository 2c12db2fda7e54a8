package pgxrepo

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNumericRoundTrip(t *testing.T) {
	d := decimal.RequireFromString("-1250.075")
	assert.True(t, d.Equal(numericToDecimal(decimalToNumeric(d))))
	assert.True(t, decimal.Zero.Equal(numericToDecimal(pgtype.Numeric{})))
}

func TestTimestamptzPtr(t *testing.T) {
	assert.Nil(t, timestamptzToPtr(pgtype.Timestamptz{}))
	assert.False(t, ptrToTimestamptz(nil).Valid)

	now := time.Now().UTC()
	got := timestamptzToPtr(ptrToTimestamptz(&now))
	if assert.NotNil(t, got) {
		assert.True(t, now.Equal(*got))
	}
}
