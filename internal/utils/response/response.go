package response

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/eshop-checkout/internal/errors"
	"github.com/go-playground/validator/v10"
)

// APIResponse is the envelope of every JSON body the API writes.
type APIResponse struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// validation tag -> message; %[1]s is the field, %[2]s the tag parameter
var validationMessages = map[string]string{
	"required": "Field %[1]s is required",
	"email":    "Field %[1]s must be a valid email address",
	"uuid":     "Field %[1]s must be a valid UUID",
	"min":      "Field %[1]s must be at least %[2]s characters",
	"max":      "Field %[1]s must be at most %[2]s characters",
	"gt":       "Field %[1]s must be greater than %[2]s",
	"gte":      "Field %[1]s must be at least %[2]s",
	"lt":       "Field %[1]s must be less than %[2]s",
}

func WriteJson(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response body", slog.Int("status", statusCode), slog.String("error", err.Error()))
		return err
	}

	return nil
}

func Success(w http.ResponseWriter, statusCode int, data any) {
	WriteJson(w, statusCode, APIResponse{Success: true, Data: data})
}

// Error writes err as an error envelope. Anything that is not an AppError is
// reported as a 500 without leaking its text.
func Error(w http.ResponseWriter, err error) {
	appErr, ok := errors.IsAppError(err)
	if !ok {
		writeError(w, http.StatusInternalServerError, &ErrorResponse{
			Code:    errors.ErrCodeInternal,
			Message: "An unexpected error occurred",
		})
		return
	}

	body := &ErrorResponse{Code: appErr.Code, Message: appErr.Message}
	if appErr.Detail != "" {
		body.Details = []string{appErr.Detail}
	}

	writeError(w, appErr.StatusCode, body)
}

func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {
	details := make([]string, 0, len(errs))
	for _, fe := range errs {
		details = append(details, validationMessage(fe))
	}

	writeError(w, http.StatusBadRequest, &ErrorResponse{
		Code:    errors.ErrCodeValidation,
		Message: "Validation failed",
		Details: details,
	})
}

func validationMessage(fe validator.FieldError) string {
	if format, ok := validationMessages[fe.Tag()]; ok {
		return fmt.Sprintf(format, fe.Field(), fe.Param())
	}

	return fmt.Sprintf("Field %s is invalid: %s=%s", fe.Field(), fe.Tag(), fe.Param())
}

func writeError(w http.ResponseWriter, statusCode int, body *ErrorResponse) {
	WriteJson(w, statusCode, APIResponse{Success: false, Error: body})
}
