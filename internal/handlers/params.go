// internal/handlers/params.go
package handlers

import (
	"net/http"
	"strconv"

	"mussar_keep/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// parseUintParam reads a numeric URL parameter. A non-numeric value is a 400,
// not a 404, so the caller learns the path was malformed.
func parseUintParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, model.NewAppError("INVALID_URL_PARAM", "Invalid "+name+" in URL", model.ErrInvalidInput)
	}
	return uint(id), nil
}

func parseUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_URL_PARAM", "Invalid "+name+" in URL", model.ErrInvalidInput)
	}
	return id, nil
}
