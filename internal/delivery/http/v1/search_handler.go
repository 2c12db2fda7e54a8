package v1

import (
	"net/http"

	"procurement-search/internal/domain"
	"procurement-search/pkg/utils"
)

type SearchHandler struct {
	searchUC     domain.SearchUsecase
	maxBodyBytes int64
}

func NewSearchHandler(searchUC domain.SearchUsecase, maxBodyBytes int64) *SearchHandler {
	return &SearchHandler{
		searchUC:     searchUC,
		maxBodyBytes: maxBodyBytes,
	}
}

// Search handles POST /api/records.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req domain.SearchRequest
	if err := utils.DecodeJSON(w, r, &req, h.maxBodyBytes); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	resp, err := h.searchUC.Search(r.Context(), req)
	if err != nil {
		writeUsecaseError(w, r, err, "Record search failed")
		return
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}
