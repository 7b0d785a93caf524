// internal/handlers/weekly_text_handler.go
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

type WeeklyTextHandler struct {
	service service.WeeklyTextService
	logger  *slog.Logger
}

func NewWeeklyTextHandler(s service.WeeklyTextService, logger *slog.Logger) *WeeklyTextHandler {
	return &WeeklyTextHandler{
		service: s,
		logger:  logger.With(slog.String("handler", "WeeklyTextHandler")),
	}
}

func (h *WeeklyTextHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListWeeklyTexts)
	r.Get("/{id}", h.GetWeeklyText)
	r.With(middleware.RequireSuperuser).Post("/", h.PostWeeklyText)
	r.With(middleware.RequireSuperuser).Patch("/{id}", h.PatchWeeklyText)
	r.With(middleware.RequireSuperuser).Delete("/{id}", h.DeleteWeeklyText)
	return r
}

func (h *WeeklyTextHandler) PostWeeklyText(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.CreateWeeklyTextRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	text, err := h.service.CreateWeeklyText(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, text, logger)
}

func (h *WeeklyTextHandler) ListWeeklyTexts(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	texts, err := h.service.ListWeeklyTexts(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, texts, logger)
}

func (h *WeeklyTextHandler) GetWeeklyText(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	id, err := parseUintParam(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	text, err := h.service.GetWeeklyText(r.Context(), id)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, text, logger)
}

func (h *WeeklyTextHandler) PatchWeeklyText(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	id, err := parseUintParam(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PatchWeeklyTextRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	text, err := h.service.PatchWeeklyText(r.Context(), id, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, text, logger)
}

func (h *WeeklyTextHandler) DeleteWeeklyText(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	id, err := parseUintParam(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := h.service.DeleteWeeklyText(r.Context(), id); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
