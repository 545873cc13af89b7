package warehouse

import (
	"context"
	"errors"
	"time"

	"airsense/backend/services/dashboard-service/internal/models"
)

// ErrNoData indicates the warehouse holds no matching rows.
var ErrNoData = errors.New("warehouse: no data")

// Repository reads historical sensor readings from the warehouse. The
// dashboard only queries; ingestion into the warehouse happens elsewhere.
type Repository interface {
	// Latest returns the newest reading or ErrNoData.
	Latest(ctx context.Context) (*models.StoredReading, error)
	// Since returns readings newer than cutoff, oldest first.
	Since(ctx context.Context, cutoff time.Time) ([]models.StoredReading, error)
	// Recent returns the newest limit readings, newest first.
	Recent(ctx context.Context, limit int) ([]models.StoredReading, error)
}
