package models

// Reading is a single telemetry push from an air-quality node. Every field is
// optional: a nil pointer marks a value the device did not send and is omitted
// from JSON output. The field set mirrors the columns of the historical
// warehouse table the dashboards query.
type Reading struct {
	DeviceID        *string  `json:"device_id,omitempty"`
	IPAddress       *string  `json:"ip_address,omitempty"`
	TemperatureC    *float64 `json:"temperature_C,omitempty"`
	HumidityPercent *float64 `json:"humidity_percent,omitempty"`
	DewPointC       *float64 `json:"dew_point_C,omitempty"`
	HeatIndexC      *float64 `json:"heat_index_C,omitempty"`
	PMSOK           *bool    `json:"pms_ok,omitempty"`
	PM1             *float64 `json:"pm1_0_ugm3,omitempty"`
	PM25            *float64 `json:"pm2_5_ugm3,omitempty"`
	PM10            *float64 `json:"pm10_ugm3,omitempty"`
	AQIIndex        *int     `json:"aqi_index,omitempty"`
	AQICategory     *string  `json:"aqi_category,omitempty"`
	CO2PPM          *int     `json:"co2_ppm,omitempty"`
	TimestampMS     *int64   `json:"timestamp_ms,omitempty"`
}

// IsEmpty reports whether the reading carries no field at all.
func (r *Reading) IsEmpty() bool {
	return r.DeviceID == nil &&
		r.IPAddress == nil &&
		r.TemperatureC == nil &&
		r.HumidityPercent == nil &&
		r.DewPointC == nil &&
		r.HeatIndexC == nil &&
		r.PMSOK == nil &&
		r.PM1 == nil &&
		r.PM25 == nil &&
		r.PM10 == nil &&
		r.AQIIndex == nil &&
		r.AQICategory == nil &&
		r.CO2PPM == nil &&
		r.TimestampMS == nil
}
