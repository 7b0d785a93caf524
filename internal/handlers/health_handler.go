// internal/handlers/health_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"mussar_keep/internal/middleware"
	"mussar_keep/internal/webutil"

	"gorm.io/gorm"
)

type HealthHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewHealthHandler(db *gorm.DB, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger.With(slog.String("handler", "HealthHandler")),
	}
}

// Health reports liveness plus a DB ping.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}
	if err != nil {
		logger.Error("Health check failed: DB unreachable", "error", err)
		webutil.RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"}, logger)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
}
