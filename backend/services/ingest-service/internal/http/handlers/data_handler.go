package handlers

import (
	"net/http"

	"airsense/backend/services/ingest-service/internal/service"
)

// NewDataHandler returns the GET /data handler serving the current snapshot.
// Fields the device never sent are omitted, not merged from earlier pushes.
func NewDataHandler(svc *service.IngestService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Current())
	}
}
