package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"airsense/backend/services/dashboard-service/internal/service"
)

// NewRecordsHandler returns GET /api/dashboard/records handler. The optional
// limit query parameter caps the page size.
func NewRecordsHandler(svc *service.DashboardService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := service.DefaultRecordsLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				writeError(w, http.StatusBadRequest, "invalid limit")
				return
			}
			limit = parsed
		}

		records, err := svc.Records(r.Context(), limit)
		if err != nil {
			logger.Error("failed to fetch records", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to fetch records")
			return
		}
		writeJSON(w, http.StatusOK, records)
	}
}
