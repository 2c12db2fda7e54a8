package v1

import (
	"errors"
	"net/http"

	"procurement-search/internal/domain"
	"procurement-search/pkg/logger"
	"procurement-search/pkg/utils"
)

// writeUsecaseError maps a usecase error to a response. Only validation
// messages reach the client; everything else is logged and reported as a
// generic 500.
func writeUsecaseError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		utils.WriteError(w, http.StatusBadRequest, verr.Message)
		return
	}

	event := logger.WithContext(r.Context()).Error().Err(err)
	if errors.Is(err, domain.ErrBuyerNotResolved) {
		event = event.Bool("integrity_violation", true)
	}
	event.Msg(logMsg)

	utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
}
