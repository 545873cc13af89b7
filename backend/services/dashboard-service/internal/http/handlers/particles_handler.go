package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"airsense/backend/services/dashboard-service/internal/service"
)

// NewParticlesHandler returns GET /api/dashboard/particles handler.
func NewParticlesHandler(svc *service.DashboardService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		particles, err := svc.Particles(r.Context())
		if err != nil {
			logger.Error("failed to build particle breakdown", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to fetch particles")
			return
		}
		writeJSON(w, http.StatusOK, particles)
	}
}
