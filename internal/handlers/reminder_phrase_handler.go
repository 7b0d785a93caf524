// internal/handlers/reminder_phrase_handler.go
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

type ReminderPhraseHandler struct {
	service service.ReminderPhraseService
	logger  *slog.Logger
}

func NewReminderPhraseHandler(s service.ReminderPhraseService, logger *slog.Logger) *ReminderPhraseHandler {
	return &ReminderPhraseHandler{
		service: s,
		logger:  logger.With(slog.String("handler", "ReminderPhraseHandler")),
	}
}

func (h *ReminderPhraseHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListReminderPhrases)
	r.Get("/{id}", h.GetReminderPhrase)
	r.With(middleware.RequireSuperuser).Post("/", h.PostReminderPhrase)
	r.With(middleware.RequireSuperuser).Patch("/{id}", h.PatchReminderPhrase)
	r.With(middleware.RequireSuperuser).Delete("/{id}", h.DeleteReminderPhrase)
	return r
}

func (h *ReminderPhraseHandler) PostReminderPhrase(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.CreateReminderPhraseRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	phrase, err := h.service.CreateReminderPhrase(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, phrase, logger)
}

func (h *ReminderPhraseHandler) ListReminderPhrases(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	phrases, err := h.service.ListReminderPhrases(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, phrases, logger)
}

func (h *ReminderPhraseHandler) GetReminderPhrase(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	id, err := parseUintParam(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	phrase, err := h.service.GetReminderPhrase(r.Context(), id)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, phrase, logger)
}

func (h *ReminderPhraseHandler) PatchReminderPhrase(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	id, err := parseUintParam(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PatchReminderPhraseRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	phrase, err := h.service.PatchReminderPhrase(r.Context(), id, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, phrase, logger)
}

func (h *ReminderPhraseHandler) DeleteReminderPhrase(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	id, err := parseUintParam(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := h.service.DeleteReminderPhrase(r.Context(), id); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
