package service

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"airsense/backend/services/ingest-service/internal/state"
)

func newTestService() *IngestService {
	return NewIngestService(state.NewLatestStore(), zap.NewNop())
}

func TestApplyStoresTypedFields(t *testing.T) {
	svc := newTestService()

	payload := []byte(`{"device_id":"esp32-1","temperature_C":24.5,"co2_ppm":650}`)
	reading, err := svc.Apply(payload)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if reading.DeviceID == nil || *reading.DeviceID != "esp32-1" {
		t.Errorf("device_id = %v, want esp32-1", reading.DeviceID)
	}
	if reading.TemperatureC == nil || *reading.TemperatureC != 24.5 {
		t.Errorf("temperature_C = %v, want 24.5", reading.TemperatureC)
	}
	if reading.CO2PPM == nil || *reading.CO2PPM != 650 {
		t.Errorf("co2_ppm = %v, want 650", reading.CO2PPM)
	}
	if reading.HumidityPercent != nil {
		t.Error("humidity_percent should be absent")
	}
	if svc.Current() != reading {
		t.Error("Current() should return the applied reading")
	}
}

func TestApplyRejectsMalformedJSON(t *testing.T) {
	svc := newTestService()

	cases := []struct {
		name    string
		payload string
	}{
		{"empty body", ``},
		{"truncated object", `{"device_id":"esp32-1"`},
		{"bare string", `"not an object"`},
		{"array", `[{"device_id":"esp32-1"}]`},
		{"wrong field type", `{"temperature_C":"24.5"}`},
		{"wrong int type", `{"co2_ppm":"high"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Apply([]byte(tc.payload)); !errors.Is(err, ErrInvalidPayload) {
				t.Errorf("Apply(%s) error = %v, want ErrInvalidPayload", tc.payload, err)
			}
		})
	}

	if !svc.Current().IsEmpty() {
		t.Error("rejected payloads must not touch the stored reading")
	}
}

func TestApplyRejectsEmptyReadings(t *testing.T) {
	svc := newTestService()

	cases := []struct {
		name    string
		payload string
	}{
		{"empty object", `{}`},
		{"null body", `null`},
		{"unknown fields only", `{"voltage":3.3,"rssi":-62}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Apply([]byte(tc.payload)); !errors.Is(err, ErrEmptyReading) {
				t.Errorf("Apply(%s) error = %v, want ErrEmptyReading", tc.payload, err)
			}
		})
	}
}

func TestApplyReplacesWholeReading(t *testing.T) {
	svc := newTestService()

	full := []byte(`{"device_id":"esp32-1","ip_address":"10.0.0.7","temperature_C":24.5,"humidity_percent":41.0,"dew_point_C":10.6,"heat_index_C":24.1,"pms_ok":true,"pm1_0_ugm3":4.0,"pm2_5_ugm3":7.2,"pm10_ugm3":9.9,"aqi_index":30,"aqi_category":"Good","co2_ppm":650,"timestamp_ms":1700000000000}`)
	if _, err := svc.Apply(full); err != nil {
		t.Fatalf("Apply(full) error = %v", err)
	}

	partial := []byte(`{"co2_ppm":800}`)
	if _, err := svc.Apply(partial); err != nil {
		t.Fatalf("Apply(partial) error = %v", err)
	}

	current := svc.Current()
	if current.CO2PPM == nil || *current.CO2PPM != 800 {
		t.Errorf("co2_ppm = %v, want 800", current.CO2PPM)
	}
	if current.DeviceID != nil {
		t.Error("device_id must not survive a full replace")
	}
	if current.TemperatureC != nil {
		t.Error("temperature_C must not survive a full replace")
	}
	if current.PMSOK != nil {
		t.Error("pms_ok must not survive a full replace")
	}
}

func TestCurrentStartsEmpty(t *testing.T) {
	svc := newTestService()

	if !svc.Current().IsEmpty() {
		t.Error("expected all fields absent before the first update")
	}
}
