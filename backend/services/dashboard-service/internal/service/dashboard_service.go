package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"airsense/backend/services/dashboard-service/internal/models"
	"airsense/backend/services/dashboard-service/internal/warehouse"
)

// Thresholds for the KPI cards.
const (
	// CO2AlertPPM is the level above which the overview raises the alert flag.
	CO2AlertPPM = 1000
	// CO2GaugeMaxPPM caps the CO2 gauge scale.
	CO2GaugeMaxPPM = 2000
)

const (
	// DefaultHistoryWindow is how far back the charts look by default.
	DefaultHistoryWindow = 24 * time.Hour
	// MaxHistoryWindow bounds user-supplied chart windows.
	MaxHistoryWindow = 7 * 24 * time.Hour
	// DefaultRecordsLimit is the raw-table page size.
	DefaultRecordsLimit = 10
	// MaxRecordsLimit bounds user-supplied page sizes.
	MaxRecordsLimit = 100
)

var aqiColors = map[string]string{
	"Good":      "green",
	"Moderate":  "yellow",
	"Unhealthy": "red",
	"Hazardous": "darkred",
}

const defaultAQIColor = "blue"

// AQIColor maps an AQI category to its display color, falling back to the
// neutral color for unknown or missing categories.
func AQIColor(category string) string {
	if color, ok := aqiColors[category]; ok {
		return color
	}
	return defaultAQIColor
}

// DashboardService derives dashboard views from warehouse rows.
type DashboardService struct {
	repo   warehouse.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewDashboardService returns service instance.
func NewDashboardService(repo warehouse.Repository, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Overview builds the KPI card values from the newest warehouse row. An empty
// warehouse is not an error; the view carries a has_data marker instead.
func (s *DashboardService) Overview(ctx context.Context) (*models.Overview, error) {
	latest, err := s.repo.Latest(ctx)
	if err != nil {
		if errors.Is(err, warehouse.ErrNoData) {
			s.logger.Debug("warehouse holds no readings yet")
			return &models.Overview{
				HasData:        false,
				CO2GaugeMaxPPM: CO2GaugeMaxPPM,
				AQIColor:       defaultAQIColor,
			}, nil
		}
		return nil, err
	}

	overview := &models.Overview{
		HasData:         true,
		DeviceID:        latest.DeviceID,
		IPAddress:       latest.IPAddress,
		PMSOK:           latest.PMSOK,
		UpdatedAtMS:     latest.TimestampMS,
		TemperatureC:    latest.TemperatureC,
		HumidityPercent: latest.HumidityPercent,
		DewPointC:       latest.DewPointC,
		HeatIndexC:      latest.HeatIndexC,
		CO2PPM:          latest.CO2PPM,
		CO2GaugeMaxPPM:  CO2GaugeMaxPPM,
		PM25:            latest.PM25,
		AQIIndex:        latest.AQIIndex,
		AQICategory:     latest.AQICategory,
		AQIColor:        defaultAQIColor,
	}
	if latest.CO2PPM != nil && *latest.CO2PPM > CO2AlertPPM {
		overview.CO2Alert = true
	}
	if latest.AQICategory != nil {
		overview.AQIColor = AQIColor(*latest.AQICategory)
	}
	return overview, nil
}

// History builds the PM2.5 and CO2 trend series over the given window. Rows
// missing a timestamp are dropped; rows missing one metric still contribute
// to the other series.
func (s *DashboardService) History(ctx context.Context, window time.Duration) (*models.History, error) {
	if window <= 0 {
		window = DefaultHistoryWindow
	}
	if window > MaxHistoryWindow {
		window = MaxHistoryWindow
	}

	cutoff := s.now().Add(-window)
	rows, err := s.repo.Since(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	// Empty series marshal as [] rather than null; chart clients iterate
	// without a presence check.
	history := &models.History{
		WindowSeconds: int64(window.Seconds()),
		PM25:          []models.HistoryPoint{},
		CO2:           []models.HistoryPoint{},
	}
	for _, row := range rows {
		if row.TimestampMS == nil {
			continue
		}
		if row.PM25 != nil {
			history.PM25 = append(history.PM25, models.HistoryPoint{T: *row.TimestampMS, V: *row.PM25})
		}
		if row.CO2PPM != nil {
			history.CO2 = append(history.CO2, models.HistoryPoint{T: *row.TimestampMS, V: float64(*row.CO2PPM)})
		}
	}
	return history, nil
}

// Particles builds the particulate breakdown from the newest warehouse row.
func (s *DashboardService) Particles(ctx context.Context) (*models.ParticleBreakdown, error) {
	latest, err := s.repo.Latest(ctx)
	if err != nil {
		if errors.Is(err, warehouse.ErrNoData) {
			s.logger.Debug("warehouse holds no readings yet")
			return &models.ParticleBreakdown{HasData: false}, nil
		}
		return nil, err
	}

	return &models.ParticleBreakdown{
		HasData:     true,
		UpdatedAtMS: latest.TimestampMS,
		PM1:         latest.PM1,
		PM25:        latest.PM25,
		PM10:        latest.PM10,
	}, nil
}

// Records returns the newest raw rows for the table view, limit clamped to
// [1, MaxRecordsLimit].
func (s *DashboardService) Records(ctx context.Context, limit int) (*models.RecordsPage, error) {
	if limit <= 0 {
		limit = DefaultRecordsLimit
	}
	if limit > MaxRecordsLimit {
		limit = MaxRecordsLimit
	}

	rows, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.StoredReading{}
	}
	return &models.RecordsPage{
		Limit: limit,
		Rows:  rows,
	}, nil
}
