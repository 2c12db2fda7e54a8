package v1

import (
	"context"
	"net/http"
	"time"

	"procurement-search/internal/domain"
	"procurement-search/pkg/logger"
	"procurement-search/pkg/utils"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

func NewHealthHandler(db Pinger, timeout time.Duration) *HealthHandler {
	return &HealthHandler{db: db, timeout: timeout}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Health check failed")
		utils.WriteJSON(w, http.StatusServiceUnavailable, domain.HealthResponse{Status: "unavailable", DB: "unreachable"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, domain.HealthResponse{Status: "ok", DB: "connected"})
}
