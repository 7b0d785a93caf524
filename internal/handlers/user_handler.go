// internal/handlers/user_handler.go
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

type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

func NewUserHandler(s service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: s,
		logger:  logger.With(slog.String("handler", "UserHandler")),
	}
}

func (h *UserHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/me", h.GetMe)
	r.Get("/{id}", h.GetUser)
	r.With(middleware.RequireSuperuser).Get("/", h.ListUsers)
	r.With(middleware.RequireSuperuser).Post("/", h.PostUser)
	r.With(middleware.RequireSuperuser).Patch("/{id}", h.PatchUser)
	r.With(middleware.RequireSuperuser).Delete("/{id}", h.DeleteUser)
	return r
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	user, err := middleware.GetCurrentUser(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}

// GetUser lets users fetch themselves; any other ID requires superuser.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	current, err := middleware.GetCurrentUser(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	userID, err := parseUUIDParam(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if userID != current.ID && !current.IsSuperuser {
		webutil.HandleError(w, logger, model.NewAppError("FORBIDDEN", "The user doesn't have enough privileges", model.ErrForbidden))
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, users, logger)
}

func (h *UserHandler) PostUser(w http.ResponseWriter, r *http.Request) {
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

func (h *UserHandler) PatchUser(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := parseUUIDParam(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PatchUserRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	user, err := h.service.PatchUser(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	current, err := middleware.GetCurrentUser(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	userID, err := parseUUIDParam(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if userID == current.ID {
		webutil.HandleError(w, logger, model.NewAppError("FORBIDDEN", "Super users are not allowed to delete themselves", model.ErrForbidden))
		return
	}

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
