package query

import (
	"testing"

	"procurement-search/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestRecordSearch_NoFilters(t *testing.T) {
	st := RecordSearch(Postgres, domain.RecordFilter{Limit: 11, Offset: 20})

	assert.Equal(t,
		"SELECT id, title, description, publish_date, value, currency, stage, close_date, award_date, buyer_id FROM procurement_records ORDER BY publish_date DESC, id ASC LIMIT $1 OFFSET $2",
		st.SQL)
	assert.Equal(t, []any{11, 20}, st.Args)
}

func TestRecordSearch_AllBuyersSentinel(t *testing.T) {
	st := RecordSearch(Postgres, domain.RecordFilter{BuyerID: "0", Limit: 3})

	assert.NotContains(t, st.SQL, "WHERE")
	assert.Equal(t, []any{3, 0}, st.Args)
}

func TestRecordSearch_Postgres(t *testing.T) {
	st := RecordSearch(Postgres, domain.RecordFilter{TextSearch: "road", BuyerID: "B1", Limit: 3, Offset: 4})

	assert.Contains(t, st.SQL, `WHERE (title ILIKE $1 ESCAPE '\' OR description ILIKE $1 ESCAPE '\') AND buyer_id = $2`)
	assert.Contains(t, st.SQL, "LIMIT $3 OFFSET $4")
	assert.Equal(t, []any{"%road%", "B1", 3, 4}, st.Args)
}

func TestRecordSearch_SQLite(t *testing.T) {
	st := RecordSearch(SQLite, domain.RecordFilter{TextSearch: "50%_off", BuyerID: "B1", Limit: 3, Offset: 4})

	assert.Contains(t, st.SQL, `WHERE (title LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\') AND buyer_id = ?`)
	assert.Contains(t, st.SQL, "LIMIT ? OFFSET ?")
	assert.Equal(t, []any{`%50\%\_off%`, `%50\%\_off%`, "B1", 3, 4}, st.Args)
}

func TestBuyersByIDs(t *testing.T) {
	pg := BuyersByIDs(Postgres, []string{"B1", "B2"})
	assert.Equal(t, "SELECT id, name FROM buyers WHERE id IN ($1, $2)", pg.SQL)
	assert.Equal(t, []any{"B1", "B2"}, pg.Args)

	lite := BuyersByIDs(SQLite, []string{"B1"})
	assert.Equal(t, "SELECT id, name FROM buyers WHERE id IN (?)", lite.SQL)
}
