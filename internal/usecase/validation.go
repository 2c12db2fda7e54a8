package usecase

import (
	"errors"

	"procurement-search/internal/domain"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var searchFieldMessages = map[string]string{
	"Limit":  "Limit must be between 1 and 100.",
	"Offset": "Offset must not be negative.",
}

// validateSearchRequest reports the first rejected field as a
// domain.ValidationError.
func validateSearchRequest(req domain.SearchRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		msg, ok := searchFieldMessages[fe.Field()]
		if !ok {
			msg = "Invalid value for " + fe.Field() + "."
		}
		return domain.NewValidationError(fe.Field(), msg)
	}
	return err
}
