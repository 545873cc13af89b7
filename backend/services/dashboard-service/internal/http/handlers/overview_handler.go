package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"airsense/backend/services/dashboard-service/internal/service"
)

// NewOverviewHandler returns GET /api/dashboard/overview handler.
func NewOverviewHandler(svc *service.DashboardService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := svc.Overview(r.Context())
		if err != nil {
			logger.Error("failed to build overview", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to fetch overview")
			return
		}
		writeJSON(w, http.StatusOK, overview)
	}
}
