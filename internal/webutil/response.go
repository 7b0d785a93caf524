// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"mussar_keep/internal/model"
)

// HandleError interprets err and writes the JSON error response. This is the
// single exit point for every failed request.
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	statusCode := MapErrorToStatusCode(err)

	var detail string
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		detail = appErr.Detail
	} else if statusCode == http.StatusInternalServerError {
		detail = "Internal server error"
	} else {
		detail = defaultDetail(err)
	}

	if statusCode == http.StatusInternalServerError {
		// Never leak internals to the caller; the log gets the real error.
		logger.Error("Unhandled error", slog.Any("error", err))
	}

	RespondWithJSON(w, statusCode, model.APIErrorResponse{Detail: detail}, logger)
}

// MapErrorToStatusCode maps the error taxonomy to HTTP status codes. All
// constraint-violation kinds are 400 by contract.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrInvalidInput),
		errors.Is(err, model.ErrDuplicate),
		errors.Is(err, model.ErrInvalidReference),
		errors.Is(err, model.ErrConstraint):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func defaultDetail(err error) string {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return "Not found"
	case errors.Is(err, model.ErrUnauthorized):
		return "Not authenticated"
	case errors.Is(err, model.ErrForbidden):
		return "The user doesn't have enough privileges"
	case errors.Is(err, model.ErrDuplicate):
		return "Duplicate value violates a unique constraint"
	case errors.Is(err, model.ErrInvalidReference):
		return "Invalid reference specified"
	case errors.Is(err, model.ErrConstraint):
		return "Database constraint violated"
	default:
		return "Invalid input"
	}
}

// RespondWithJSON writes payload as the JSON response body.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
