package main

import (
	"context"
	"crypto/tls"
	"flag"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"airsense/backend/libs/logging"
)

// device-sim pushes synthetic readings at the ingest service so the live
// endpoints can be exercised without an actual sensor node on the bench.

// reading mirrors the firmware push payload. The simulator always sends the
// full field set.
type reading struct {
	DeviceID        string  `json:"device_id"`
	IPAddress       string  `json:"ip_address"`
	TemperatureC    float64 `json:"temperature_C"`
	HumidityPercent float64 `json:"humidity_percent"`
	DewPointC       float64 `json:"dew_point_C"`
	HeatIndexC      float64 `json:"heat_index_C"`
	PMSOK           bool    `json:"pms_ok"`
	PM1             float64 `json:"pm1_0_ugm3"`
	PM25            float64 `json:"pm2_5_ugm3"`
	PM10            float64 `json:"pm10_ugm3"`
	AQIIndex        int     `json:"aqi_index"`
	AQICategory     string  `json:"aqi_category"`
	CO2PPM          int     `json:"co2_ppm"`
	TimestampMS     int64   `json:"timestamp_ms"`
}

func main() {
	url := flag.String("url", "https://localhost:8443/update", "ingest update endpoint")
	deviceID := flag.String("device-id", "esp32-sim", "device id to report")
	interval := flag.Duration("interval", 5*time.Second, "delay between pushes")
	insecure := flag.Bool("insecure", false, "skip TLS verification for self-signed ingest certs")
	flag.Parse()

	logger, err := logging.NewLogger("device-sim")
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := resty.New().SetTimeout(10 * time.Second)
	if *insecure {
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	logger.Info("starting simulator",
		zap.String("url", *url),
		zap.String("device_id", *deviceID),
		zap.Duration("interval", *interval),
	)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		push(ctx, client, logger, *url, *deviceID)
		select {
		case <-ctx.Done():
			logger.Info("simulator stopped")
			return
		case <-ticker.C:
		}
	}
}

func push(ctx context.Context, client *resty.Client, logger *zap.Logger, url, deviceID string) {
	payload := syntheticReading(deviceID)

	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(url)
	if err != nil {
		logger.Warn("push failed", zap.Error(err))
		return
	}
	if resp.StatusCode() >= 400 {
		logger.Warn("push rejected",
			zap.Int("status", resp.StatusCode()),
			zap.ByteString("body", resp.Body()),
		)
		return
	}
	logger.Info("pushed reading",
		zap.Int("status", resp.StatusCode()),
		zap.Float64("temperature_C", payload.TemperatureC),
		zap.Float64("pm2_5_ugm3", payload.PM25),
		zap.Int("co2_ppm", payload.CO2PPM),
	)
}

func syntheticReading(deviceID string) reading {
	temperature := round1(20 + rand.Float64()*8)
	humidity := round1(35 + rand.Float64()*30)
	pm25 := round1(rand.Float64() * 40)
	aqiIndex, aqiCategory := aqiFromPM25(pm25)

	return reading{
		DeviceID:        deviceID,
		IPAddress:       "192.168.1.50",
		TemperatureC:    temperature,
		HumidityPercent: humidity,
		DewPointC:       round1(dewPointC(temperature, humidity)),
		HeatIndexC:      round1(heatIndexC(temperature, humidity)),
		PMSOK:           true,
		PM1:             round1(rand.Float64() * 12),
		PM25:            pm25,
		PM10:            round1(pm25 + rand.Float64()*15),
		AQIIndex:        aqiIndex,
		AQICategory:     aqiCategory,
		CO2PPM:          420 + rand.Intn(1200),
		TimestampMS:     time.Now().UnixMilli(),
	}
}

// dewPointC uses the Magnus approximation.
func dewPointC(temperature, humidity float64) float64 {
	const a, b = 17.62, 243.12
	gamma := a*temperature/(b+temperature) + math.Log(humidity/100)
	return b * gamma / (a - gamma)
}

// heatIndexC is a coarse approximation, close enough for fake data.
func heatIndexC(temperature, humidity float64) float64 {
	return temperature + 0.05*humidity
}

func aqiFromPM25(pm25 float64) (int, string) {
	switch {
	case pm25 <= 12.0:
		return scale(pm25, 0, 12.0, 0, 50), "Good"
	case pm25 <= 35.4:
		return scale(pm25, 12.1, 35.4, 51, 100), "Moderate"
	case pm25 <= 150.4:
		return scale(pm25, 35.5, 150.4, 101, 200), "Unhealthy"
	default:
		return scale(pm25, 150.5, 500.4, 201, 300), "Hazardous"
	}
}

func scale(v, lo, hi float64, aqiLo, aqiHi int) int {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return aqiLo + int((v-lo)/(hi-lo)*float64(aqiHi-aqiLo))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
