package v1

import (
	"net/http"

	"procurement-search/internal/domain"
	"procurement-search/pkg/utils"
)

type BuyerHandler struct {
	buyerUC domain.BuyerUsecase
}

func NewBuyerHandler(buyerUC domain.BuyerUsecase) *BuyerHandler {
	return &BuyerHandler{buyerUC: buyerUC}
}

// ListBuyers handles GET /api/buyers.
func (h *BuyerHandler) ListBuyers(w http.ResponseWriter, r *http.Request) {
	buyers, err := h.buyerUC.ListBuyers(r.Context())
	if err != nil {
		writeUsecaseError(w, r, err, "Buyer lookup failed")
		return
	}

	utils.WriteJSON(w, http.StatusOK, domain.BuyersResponse{Buyers: buyers})
}
