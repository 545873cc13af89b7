package models

// StoredReading is one row of the historical readings table. Columns are
// nullable because devices report partial payloads; a nil pointer maps to SQL
// NULL. Unlike the live ingest snapshot, dashboard rows keep explicit nulls in
// JSON so tables render every column.
type StoredReading struct {
	DeviceID        *string  `db:"device_id" json:"device_id"`
	IPAddress       *string  `db:"ip_address" json:"ip_address"`
	TemperatureC    *float64 `db:"temperature_c" json:"temperature_C"`
	HumidityPercent *float64 `db:"humidity_percent" json:"humidity_percent"`
	DewPointC       *float64 `db:"dew_point_c" json:"dew_point_C"`
	HeatIndexC      *float64 `db:"heat_index_c" json:"heat_index_C"`
	PMSOK           *bool    `db:"pms_ok" json:"pms_ok"`
	PM1             *float64 `db:"pm1_0_ugm3" json:"pm1_0_ugm3"`
	PM25            *float64 `db:"pm2_5_ugm3" json:"pm2_5_ugm3"`
	PM10            *float64 `db:"pm10_ugm3" json:"pm10_ugm3"`
	AQIIndex        *int     `db:"aqi_index" json:"aqi_index"`
	AQICategory     *string  `db:"aqi_category" json:"aqi_category"`
	CO2PPM          *int     `db:"co2_ppm" json:"co2_ppm"`
	LatencyMS       *int64   `db:"latency_ms" json:"latency_ms"`
	Mode            *string  `db:"mode" json:"mode"`
	TimestampMS     *int64   `db:"timestamp_ms" json:"timestamp_ms"`
}
