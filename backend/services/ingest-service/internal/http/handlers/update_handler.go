package handlers

import (
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"airsense/backend/services/ingest-service/internal/service"
)

// NewUpdateHandler returns the POST /update handler accepting device pushes.
func NewUpdateHandler(svc *service.IngestService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Error("failed to read update body", zap.Error(err))
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		if _, err := svc.Apply(payload); err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidPayload):
				writeError(w, http.StatusBadRequest, "invalid JSON body")
			case errors.Is(err, service.ErrEmptyReading):
				writeError(w, http.StatusBadRequest, "no reading fields in payload")
			default:
				logger.Error("failed to apply reading", zap.Error(err))
				writeError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		writeSuccess(w, "Data updated successfully")
	}
}
