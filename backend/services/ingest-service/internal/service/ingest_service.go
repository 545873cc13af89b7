package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"airsense/backend/services/ingest-service/internal/models"
	"airsense/backend/services/ingest-service/internal/state"
)

var (
	// ErrInvalidPayload is returned when the body does not decode as a JSON object.
	ErrInvalidPayload = errors.New("ingest: invalid JSON payload")
	// ErrEmptyReading is returned when the payload carries no known reading field.
	ErrEmptyReading = errors.New("ingest: empty reading payload")
)

// IngestService applies device pushes to the in-memory snapshot and serves it
// back to readers.
type IngestService struct {
	store  *state.LatestStore
	logger *zap.Logger
}

// NewIngestService returns service instance.
func NewIngestService(store *state.LatestStore, logger *zap.Logger) *IngestService {
	return &IngestService{
		store:  store,
		logger: logger,
	}
}

// Apply decodes a pushed JSON object and replaces the stored Reading with it.
// The replace is all-or-nothing: fields absent from the payload end up absent
// in the snapshot, never merged from the previous one, and nothing changes
// unless the payload decodes into at least one known field.
func (s *IngestService) Apply(payload []byte) (*models.Reading, error) {
	reading := &models.Reading{}
	if err := json.Unmarshal(payload, reading); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if reading.IsEmpty() {
		return nil, ErrEmptyReading
	}

	s.store.Replace(reading)
	s.logger.Info("reading accepted", zap.Any("reading", reading))
	return reading, nil
}

// Current returns the latest accepted Reading.
func (s *IngestService) Current() *models.Reading {
	return s.store.Current()
}
