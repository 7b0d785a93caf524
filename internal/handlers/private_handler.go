// internal/handlers/private_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"mussar_keep/internal/middleware"
	"mussar_keep/internal/model"
	"mussar_keep/internal/service"
	"mussar_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
)

// PrivateHandler exposes unauthenticated user creation for local development
// and end-to-end tests. It is only mounted when the environment is "local".
type PrivateHandler struct {
	service service.UserService
	logger  *slog.Logger
}

func NewPrivateHandler(s service.UserService, logger *slog.Logger) *PrivateHandler {
	return &PrivateHandler{
		service: s,
		logger:  logger.With(slog.String("handler", "PrivateHandler")),
	}
}

func (h *PrivateHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/users", h.PostUser)
	return r
}

func (h *PrivateHandler) PostUser(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.CreateUserRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	user, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, user, logger)
}
