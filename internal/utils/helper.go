package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	appErrors "github.com/aaravmahajanofficial/eshop-checkout/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	maxBodyBytes    = 1 << 20
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

var errEmptyBody = errors.New("request body cannot be empty")

// DecodeJSONBody reads a single JSON document of at most 1MB into dest.
func DecodeJSONBody(r *http.Request, dest any) error {
	if r.Body == nil {
		return errEmptyBody
	}
	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		slog.Error("Failed to read request body", slog.String("error", err.Error()), slog.String("endpoint", r.URL.Path))
		return fmt.Errorf("failed to read request body: %w", err)
	}

	switch {
	case len(body) == 0:
		return errEmptyBody
	case len(body) > maxBodyBytes:
		return fmt.Errorf("request body exceeds %d bytes", maxBodyBytes)
	}

	if err := json.Unmarshal(body, dest); err != nil {
		slog.Warn("Failed to parse request JSON", slog.String("error", err.Error()), slog.String("endpoint", r.URL.Path))
		return fmt.Errorf("invalid JSON format: %w", err)
	}

	return nil
}

func ValidateStruct(validate *validator.Validate, data any) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return fmt.Errorf("validation error: %w", validationErrs)
	}

	slog.Error("Unexpected validation error", slog.String("error", err.Error()))
	return fmt.Errorf("unexpected validation error: %w", err)
}

// ParseID reads a UUID path value.
func ParseID(r *http.Request, name string) (uuid.UUID, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return uuid.Nil, appErrors.BadRequestError(fmt.Sprintf("Missing %s parameter", name))
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, appErrors.BadRequestError(fmt.Sprintf("Invalid %s format", name)).WithError(err)
	}

	return id, nil
}

// ParsePagination reads page and pageSize query parameters. Missing or out of
// range values fall back to the defaults.
func ParsePagination(r *http.Request) (int, int) {
	query := r.URL.Query()
	return queryInt(query.Get("page"), defaultPage, 1, 0),
		queryInt(query.Get("pageSize"), defaultPageSize, 1, maxPageSize)
}

func queryInt(raw string, fallback, lo, hi int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < lo || (hi > 0 && n > hi) {
		return fallback
	}
	return n
}
