package main

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"procurement-search/config"
	"procurement-search/internal/domain"
	"procurement-search/internal/repository"
	"procurement-search/internal/repository/memory"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AllowedOrigin:      "http://localhost:3001",
		DBDriver:           config.DriverMemory,
		QueryTimeout:       time.Second,
		RateLimitRPS:       1000,
		RateLimitBurst:     1000,
		RateLimitClientTTL: time.Minute,
		MaxBodyBytes:       1 << 20,
	}
}

func seededStore(t *testing.T, n int) *repository.Store {
	t.Helper()
	ctx := context.Background()
	m := memory.NewStore()
	require.NoError(t, m.UpsertBuyers(ctx, []domain.Buyer{{ID: "1", Name: "Ministry of Roads"}}))

	records := make([]domain.ProcurementRecord, 0, n)
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		records = append(records, domain.ProcurementRecord{
			ID:          fmt.Sprintf("rec-%03d", i),
			Title:       fmt.Sprintf("Bridge inspection lot %d", i),
			Description: strings.Repeat("Structural survey of regional bridges. ", 4),
			PublishDate: base.AddDate(0, 0, i),
			Value:       decimal.NewFromInt(int64(1000 + i)),
			Currency:    "EUR",
			Stage:       domain.StageTender,
			BuyerID:     "1",
		})
	}
	require.NoError(t, m.UpsertRecords(ctx, records))
	return repository.NewMemoryStore(m)
}

func TestRoutes(t *testing.T) {
	h := newHandler(testConfig(), seededStore(t, 3))

	t.Run("search", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/records", strings.NewReader(`{"textSearch":"bridge","buyerId":"0","limit":2,"offset":0}`)))

		require.Equal(t, http.StatusOK, w.Code)
		var resp domain.SearchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Records, 2)
		assert.Equal(t, "rec-002", resp.Records[0].ID)
		assert.Equal(t, "Ministry of Roads", resp.Records[0].Buyer.Name)
		assert.False(t, resp.EndOfResults)
		assert.Len(t, w.Header().Get("X-Request-ID"), 8)
	})

	t.Run("buyers", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/buyers", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"buyers":[{"id":"1","name":"Ministry of Roads"}]}`, w.Body.String())
	})

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","db":"connected"}`, w.Body.String())
	})

	t.Run("wrong method", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/records", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("preflight", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodOptions, "/api/records", nil)
		r.Header.Set("Origin", "http://localhost:3001")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:3001", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRoutes_GzipLargeResponses(t *testing.T) {
	h := newHandler(testConfig(), seededStore(t, 50))

	r := httptest.NewRequest(http.MethodPost, "/api/records", strings.NewReader(`{"limit":50,"offset":0}`))
	r.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)

	var resp domain.SearchResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Len(t, resp.Records, 50)
	assert.True(t, resp.EndOfResults)
}

func TestRoutes_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 1
	h := newHandler(cfg, seededStore(t, 1))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/buyers", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/buyers", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
