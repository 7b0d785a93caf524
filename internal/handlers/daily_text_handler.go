// internal/handlers/daily_text_handler.go
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

type DailyTextHandler struct {
	service service.DailyTextService
	logger  *slog.Logger
}

func NewDailyTextHandler(s service.DailyTextService, logger *slog.Logger) *DailyTextHandler {
	return &DailyTextHandler{
		service: s,
		logger:  logger.With(slog.String("handler", "DailyTextHandler")),
	}
}

func (h *DailyTextHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListDailyTexts)
	r.Get("/{id}", h.GetDailyText)
	r.With(middleware.RequireSuperuser).Post("/", h.PostDailyText)
	r.With(middleware.RequireSuperuser).Patch("/{id}", h.PatchDailyText)
	r.With(middleware.RequireSuperuser).Delete("/{id}", h.DeleteDailyText)
	return r
}

func (h *DailyTextHandler) PostDailyText(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.CreateDailyTextRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	text, err := h.service.CreateDailyText(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, text, logger)
}

func (h *DailyTextHandler) ListDailyTexts(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	texts, err := h.service.ListDailyTexts(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, texts, logger)
}

func (h *DailyTextHandler) GetDailyText(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	id, err := parseUintParam(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	text, err := h.service.GetDailyText(r.Context(), id)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, text, logger)
}

func (h *DailyTextHandler) PatchDailyText(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	id, err := parseUintParam(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PatchDailyTextRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	text, err := h.service.PatchDailyText(r.Context(), id, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, text, logger)
}

func (h *DailyTextHandler) DeleteDailyText(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	id, err := parseUintParam(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := h.service.DeleteDailyText(r.Context(), id); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
