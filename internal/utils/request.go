package utils

import (
	"errors"
	"log/slog"
	"net/http"

	appErrors "github.com/aaravmahajanofficial/eshop-checkout/internal/errors"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	if err := DecodeJSONBody(r, dest); err != nil {
		slog.Warn("Invalid request", slog.String("error", err.Error()))
		response.Error(w, appErrors.BadRequestError("Invalid request body").WithDetail(err.Error()))
		return false
	}

	return validateInto(w, dest, validate)
}

// ParseOptionalAndValidate accepts an empty body, leaving dest untouched.
func ParseOptionalAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	if r.Body == nil || r.ContentLength == 0 {
		return validateInto(w, dest, validate)
	}

	return ParseAndValidate(r, w, dest, validate)
}

func validateInto(w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	if err := ValidateStruct(validate, dest); err != nil {
		slog.Warn("Validation failed", slog.String("error", err.Error()))

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)
			return false
		}

		response.Error(w, appErrors.ValidationError("Invalid input data"))
		return false
	}

	return true
}
