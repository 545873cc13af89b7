package state

import (
	"sync/atomic"

	"airsense/backend/services/ingest-service/internal/models"
)

// LatestStore holds the most recent accepted Reading for the whole process.
// Writers swap in a complete record and readers load whichever swap committed
// last, so a reader can never observe a half-applied update. There is exactly
// one record: a second device posting here overwrites the first wholesale.
type LatestStore struct {
	current atomic.Pointer[models.Reading]
}

// NewLatestStore returns a store primed with the all-absent Reading.
func NewLatestStore() *LatestStore {
	s := &LatestStore{}
	s.current.Store(&models.Reading{})
	return s
}

// Replace installs the given Reading as the current snapshot. The caller must
// not mutate it afterwards.
func (s *LatestStore) Replace(r *models.Reading) {
	s.current.Store(r)
}

// Current returns the latest accepted Reading.
func (s *LatestStore) Current() *models.Reading {
	return s.current.Load()
}
