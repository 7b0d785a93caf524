// internal/handlers/kabbalah_handler.go
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

type KabbalahHandler struct {
	service service.KabbalahService
	logger  *slog.Logger
}

func NewKabbalahHandler(s service.KabbalahService, logger *slog.Logger) *KabbalahHandler {
	return &KabbalahHandler{
		service: s,
		logger:  logger.With(slog.String("handler", "KabbalahHandler")),
	}
}

func (h *KabbalahHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListKabbalot)
	r.Get("/{id}", h.GetKabbalah)
	r.With(middleware.RequireSuperuser).Post("/", h.PostKabbalah)
	r.With(middleware.RequireSuperuser).Patch("/{id}", h.PatchKabbalah)
	r.With(middleware.RequireSuperuser).Delete("/{id}", h.DeleteKabbalah)
	return r
}

func (h *KabbalahHandler) PostKabbalah(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.CreateKabbalahRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	kabbalah, err := h.service.CreateKabbalah(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, kabbalah, logger)
}

func (h *KabbalahHandler) ListKabbalot(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	kabbalot, err := h.service.ListKabbalot(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, kabbalot, logger)
}

func (h *KabbalahHandler) GetKabbalah(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	id, err := parseUintParam(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	kabbalah, err := h.service.GetKabbalah(r.Context(), id)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, kabbalah, logger)
}

func (h *KabbalahHandler) PatchKabbalah(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	id, err := parseUintParam(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PatchKabbalahRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	kabbalah, err := h.service.PatchKabbalah(r.Context(), id, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, kabbalah, logger)
}

func (h *KabbalahHandler) DeleteKabbalah(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	id, err := parseUintParam(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := h.service.DeleteKabbalah(r.Context(), id); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
