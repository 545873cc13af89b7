package warehouse

import (
	"context"
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/query"

	"airsense/backend/services/dashboard-service/internal/models"
)

// InfluxRepository reads readings from an InfluxDB 2.x bucket. Devices are
// written as one point per push with the wire field names as field keys, so a
// pivot turns each point back into a full row.
type InfluxRepository struct {
	client      influxdb2.Client
	queryAPI    api.QueryAPI
	bucket      string
	measurement string
}

// NewInfluxRepository returns repository backed by the given server.
func NewInfluxRepository(url, token, org, bucket, measurement string) *InfluxRepository {
	client := influxdb2.NewClient(url, token)
	return &InfluxRepository{
		client:      client,
		queryAPI:    client.QueryAPI(org),
		bucket:      bucket,
		measurement: measurement,
	}
}

// Close shuts down idle connections.
func (r *InfluxRepository) Close() {
	r.client.Close()
}

// Latest returns the newest reading or ErrNoData.
func (r *InfluxRepository) Latest(ctx context.Context) (*models.StoredReading, error) {
	readings, err := r.query(ctx, latestQuery(r.bucket, r.measurement))
	if err != nil {
		return nil, err
	}
	if len(readings) == 0 {
		return nil, ErrNoData
	}
	return &readings[0], nil
}

// Since returns readings newer than cutoff, oldest first.
func (r *InfluxRepository) Since(ctx context.Context, cutoff time.Time) ([]models.StoredReading, error) {
	return r.query(ctx, sinceQuery(r.bucket, r.measurement, cutoff))
}

// Recent returns the newest limit readings, newest first.
func (r *InfluxRepository) Recent(ctx context.Context, limit int) ([]models.StoredReading, error) {
	if limit <= 0 {
		limit = 10
	}
	return r.query(ctx, recentQuery(r.bucket, r.measurement, limit))
}

func (r *InfluxRepository) query(ctx context.Context, flux string) ([]models.StoredReading, error) {
	result, err := r.queryAPI.Query(ctx, flux)
	if err != nil {
		return nil, fmt.Errorf("influx query: %w", err)
	}

	var readings []models.StoredReading
	for result.Next() {
		readings = append(readings, readingFromRecord(result.Record()))
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("influx result: %w", err)
	}
	return readings, nil
}

func readingFromRecord(record *query.FluxRecord) models.StoredReading {
	reading := models.StoredReading{
		DeviceID:        stringColumn(record, "device_id"),
		IPAddress:       stringColumn(record, "ip_address"),
		TemperatureC:    floatColumn(record, "temperature_C"),
		HumidityPercent: floatColumn(record, "humidity_percent"),
		DewPointC:       floatColumn(record, "dew_point_C"),
		HeatIndexC:      floatColumn(record, "heat_index_C"),
		PMSOK:           boolColumn(record, "pms_ok"),
		PM1:             floatColumn(record, "pm1_0_ugm3"),
		PM25:            floatColumn(record, "pm2_5_ugm3"),
		PM10:            floatColumn(record, "pm10_ugm3"),
		AQIIndex:        intColumn(record, "aqi_index"),
		AQICategory:     stringColumn(record, "aqi_category"),
		CO2PPM:          intColumn(record, "co2_ppm"),
		LatencyMS:       int64Column(record, "latency_ms"),
		Mode:            stringColumn(record, "mode"),
		TimestampMS:     int64Column(record, "timestamp_ms"),
	}
	if reading.TimestampMS == nil {
		ts := record.Time().UnixMilli()
		reading.TimestampMS = &ts
	}
	return reading
}

func stringColumn(record *query.FluxRecord, key string) *string {
	if v, ok := record.ValueByKey(key).(string); ok {
		return &v
	}
	return nil
}

func floatColumn(record *query.FluxRecord, key string) *float64 {
	switch v := record.ValueByKey(key).(type) {
	case float64:
		return &v
	case int64:
		f := float64(v)
		return &f
	}
	return nil
}

func intColumn(record *query.FluxRecord, key string) *int {
	switch v := record.ValueByKey(key).(type) {
	case int64:
		n := int(v)
		return &n
	case float64:
		n := int(v)
		return &n
	}
	return nil
}

func int64Column(record *query.FluxRecord, key string) *int64 {
	switch v := record.ValueByKey(key).(type) {
	case int64:
		return &v
	case float64:
		n := int64(v)
		return &n
	}
	return nil
}

func boolColumn(record *query.FluxRecord, key string) *bool {
	if v, ok := record.ValueByKey(key).(bool); ok {
		return &v
	}
	return nil
}
