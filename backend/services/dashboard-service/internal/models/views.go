package models

// Overview carries the KPI card values for the dashboard landing view,
// derived from the most recent warehouse row. HasData is false when the
// warehouse holds no rows yet; every other field is meaningless then.
type Overview struct {
	HasData         bool     `json:"has_data"`
	DeviceID        *string  `json:"device_id,omitempty"`
	IPAddress       *string  `json:"ip_address,omitempty"`
	PMSOK           *bool    `json:"pms_ok,omitempty"`
	UpdatedAtMS     *int64   `json:"updated_at_ms,omitempty"`
	TemperatureC    *float64 `json:"temperature_C,omitempty"`
	HumidityPercent *float64 `json:"humidity_percent,omitempty"`
	DewPointC       *float64 `json:"dew_point_C,omitempty"`
	HeatIndexC      *float64 `json:"heat_index_C,omitempty"`
	CO2PPM          *int     `json:"co2_ppm,omitempty"`
	CO2Alert        bool     `json:"co2_alert"`
	CO2GaugeMaxPPM  int      `json:"co2_gauge_max_ppm"`
	PM25            *float64 `json:"pm2_5_ugm3,omitempty"`
	AQIIndex        *int     `json:"aqi_index,omitempty"`
	AQICategory     *string  `json:"aqi_category,omitempty"`
	AQIColor        string   `json:"aqi_color"`
}

// HistoryPoint is one sample of a time series, epoch milliseconds against
// value.
type HistoryPoint struct {
	T int64   `json:"t"`
	V float64 `json:"v"`
}

// History carries the trend series for the charts view. Rows with a null
// value for a metric are skipped in that metric's series, so the two series
// may differ in length.
type History struct {
	WindowSeconds int64          `json:"window_seconds"`
	PM25          []HistoryPoint `json:"pm2_5_ugm3"`
	CO2           []HistoryPoint `json:"co2_ppm"`
}

// ParticleBreakdown carries the latest particulate levels for the bar view.
type ParticleBreakdown struct {
	HasData     bool     `json:"has_data"`
	UpdatedAtMS *int64   `json:"updated_at_ms,omitempty"`
	PM1         *float64 `json:"pm1_0_ugm3,omitempty"`
	PM25        *float64 `json:"pm2_5_ugm3,omitempty"`
	PM10        *float64 `json:"pm10_ugm3,omitempty"`
}

// RecordsPage carries the newest raw rows for the table view.
type RecordsPage struct {
	Limit int             `json:"limit"`
	Rows  []StoredReading `json:"rows"`
}
