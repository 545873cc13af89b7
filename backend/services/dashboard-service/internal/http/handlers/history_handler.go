package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"airsense/backend/services/dashboard-service/internal/service"
)

// NewHistoryHandler returns GET /api/dashboard/history handler. The optional
// window query parameter takes a Go duration such as 24h or 90m.
func NewHistoryHandler(svc *service.DashboardService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window := service.DefaultHistoryWindow
		if raw := r.URL.Query().Get("window"); raw != "" {
			parsed, err := time.ParseDuration(raw)
			if err != nil || parsed <= 0 {
				writeError(w, http.StatusBadRequest, "invalid window")
				return
			}
			window = parsed
		}

		history, err := svc.History(r.Context(), window)
		if err != nil {
			logger.Error("failed to build history", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to fetch history")
			return
		}
		writeJSON(w, http.StatusOK, history)
	}
}
