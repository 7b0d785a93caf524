// internal/handlers/middah_handler.go
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

type MiddahHandler struct {
	service service.MiddahService
	logger  *slog.Logger
}

func NewMiddahHandler(s service.MiddahService, logger *slog.Logger) *MiddahHandler {
	return &MiddahHandler{
		service: s,
		logger:  logger.With(slog.String("handler", "MiddahHandler")),
	}
}

// Routes mounts the middah endpoints. Middot are immutable once created, so
// there is no PATCH route; fixing one means delete and recreate.
func (h *MiddahHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListMiddot)
	r.Get("/{name}", h.GetMiddah)
	r.With(middleware.RequireSuperuser).Post("/", h.PostMiddah)
	r.With(middleware.RequireSuperuser).Delete("/{name}", h.DeleteMiddah)
	return r
}

func (h *MiddahHandler) PostMiddah(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.CreateMiddahRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	middah, err := h.service.CreateMiddah(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, middah, logger)
}

func (h *MiddahHandler) ListMiddot(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	middot, err := h.service.ListMiddot(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, middot, logger)
}

func (h *MiddahHandler) GetMiddah(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	name := chi.URLParam(r, "name")
	middah, err := h.service.GetMiddah(r.Context(), name)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, middah, logger)
}

func (h *MiddahHandler) DeleteMiddah(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	name := chi.URLParam(r, "name")
	if err := h.service.DeleteMiddah(r.Context(), name); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
