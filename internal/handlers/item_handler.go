// internal/handlers/item_handler.go
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

// ItemHandler serves per-user practice items. Ownership is enforced in the
// service, not here.
type ItemHandler struct {
	service service.ItemService
	logger  *slog.Logger
}

func NewItemHandler(s service.ItemService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		service: s,
		logger:  logger.With(slog.String("handler", "ItemHandler")),
	}
}

func (h *ItemHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListItems)
	r.Post("/", h.PostItem)
	r.Get("/{id}", h.GetItem)
	r.Patch("/{id}", h.PatchItem)
	r.Delete("/{id}", h.DeleteItem)
	return r
}

func (h *ItemHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	current, err := middleware.GetCurrentUser(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CreateItemRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	item, err := h.service.CreateItem(r.Context(), current, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, item, logger)
}

func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	current, err := middleware.GetCurrentUser(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	items, err := h.service.ListItems(r.Context(), current)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, items, logger)
}

func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	current, err := middleware.GetCurrentUser(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	itemID, err := parseUUIDParam(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	item, err := h.service.GetItem(r.Context(), current, itemID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, item, logger)
}

func (h *ItemHandler) PatchItem(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	current, err := middleware.GetCurrentUser(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	itemID, err := parseUUIDParam(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PatchItemRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	item, err := h.service.PatchItem(r.Context(), current, itemID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, item, logger)
}

func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	current, err := middleware.GetCurrentUser(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	itemID, err := parseUUIDParam(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := h.service.DeleteItem(r.Context(), current, itemID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
