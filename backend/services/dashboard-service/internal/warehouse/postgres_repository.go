package warehouse

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"airsense/backend/services/dashboard-service/internal/models"
)

const readingColumns = `device_id, ip_address, temperature_c, humidity_percent, dew_point_c, heat_index_c, pms_ok, pm1_0_ugm3, pm2_5_ugm3, pm10_ugm3, aqi_index, aqi_category, co2_ppm, latency_ms, mode, timestamp_ms`

// PostgresRepository reads the sensor_readings table.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns repository.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Latest returns the newest reading or ErrNoData.
func (r *PostgresRepository) Latest(ctx context.Context) (*models.StoredReading, error) {
	const query = `
		SELECT ` + readingColumns + `
		FROM sensor_readings
		ORDER BY timestamp_ms DESC
		LIMIT 1
	`
	row := r.db.QueryRowContext(ctx, query)
	reading, err := scanReading(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoData
		}
		return nil, err
	}
	return reading, nil
}

// Since returns readings newer than cutoff, oldest first. The cutoff is
// compared against the device-side epoch-millisecond timestamp column.
func (r *PostgresRepository) Since(ctx context.Context, cutoff time.Time) ([]models.StoredReading, error) {
	const query = `
		SELECT ` + readingColumns + `
		FROM sensor_readings
		WHERE timestamp_ms > $1
		ORDER BY timestamp_ms ASC
	`
	rows, err := r.db.QueryContext(ctx, query, cutoff.UnixMilli())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectReadings(rows)
}

// Recent returns the newest limit readings, newest first.
func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]models.StoredReading, error) {
	if limit <= 0 {
		limit = 10
	}
	const query = `
		SELECT ` + readingColumns + `
		FROM sensor_readings
		ORDER BY timestamp_ms DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectReadings(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReading(row rowScanner) (*models.StoredReading, error) {
	var reading models.StoredReading
	if err := row.Scan(
		&reading.DeviceID,
		&reading.IPAddress,
		&reading.TemperatureC,
		&reading.HumidityPercent,
		&reading.DewPointC,
		&reading.HeatIndexC,
		&reading.PMSOK,
		&reading.PM1,
		&reading.PM25,
		&reading.PM10,
		&reading.AQIIndex,
		&reading.AQICategory,
		&reading.CO2PPM,
		&reading.LatencyMS,
		&reading.Mode,
		&reading.TimestampMS,
	); err != nil {
		return nil, err
	}
	return &reading, nil
}

func collectReadings(rows *sql.Rows) ([]models.StoredReading, error) {
	var readings []models.StoredReading
	for rows.Next() {
		reading, err := scanReading(rows)
		if err != nil {
			return nil, err
		}
		readings = append(readings, *reading)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return readings, nil
}
