package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	libconfig "airsense/backend/libs/config"
)

// Warehouse driver names.
const (
	DriverPostgres = "postgres"
	DriverInflux   = "influx"
)

// Cache backend names.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config defines dashboard service configuration.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"DASHBOARD_HTTP_PORT"`
	} `yaml:"http"`
	Warehouse struct {
		Driver string `yaml:"driver" env:"DASHBOARD_WAREHOUSE_DRIVER"`
	} `yaml:"warehouse"`
	Database struct {
		DSN string `yaml:"dsn" env:"DASHBOARD_POSTGRES_DSN"`
	} `yaml:"database"`
	Influx struct {
		URL         string `yaml:"url" env:"DASHBOARD_INFLUX_URL"`
		Token       string `yaml:"token" env:"DASHBOARD_INFLUX_TOKEN"`
		Org         string `yaml:"org" env:"DASHBOARD_INFLUX_ORG"`
		Bucket      string `yaml:"bucket" env:"DASHBOARD_INFLUX_BUCKET"`
		Measurement string `yaml:"measurement" env:"DASHBOARD_INFLUX_MEASUREMENT"`
	} `yaml:"influx"`
	Cache struct {
		Backend    string `yaml:"backend" env:"DASHBOARD_CACHE_BACKEND"`
		TTLSeconds int    `yaml:"ttlSeconds" env:"DASHBOARD_CACHE_TTL"`
	} `yaml:"cache"`
	Redis struct {
		Addr     string `yaml:"addr" env:"DASHBOARD_REDIS_ADDR"`
		Password string `yaml:"password" env:"DASHBOARD_REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"DASHBOARD_REDIS_DB"`
	} `yaml:"redis"`
	CORS struct {
		Origins string `yaml:"origins" env:"DASHBOARD_CORS_ORIGINS"`
	} `yaml:"cors"`
}

// Load reads configuration via shared helper and validates the selected
// warehouse driver and cache backend.
func Load() (*Config, error) {
	cfg := &Config{
		HTTP: struct {
			Port string `yaml:"port" env:"DASHBOARD_HTTP_PORT"`
		}{
			Port: "8091",
		},
		Warehouse: struct {
			Driver string `yaml:"driver" env:"DASHBOARD_WAREHOUSE_DRIVER"`
		}{
			Driver: DriverPostgres,
		},
		Influx: struct {
			URL         string `yaml:"url" env:"DASHBOARD_INFLUX_URL"`
			Token       string `yaml:"token" env:"DASHBOARD_INFLUX_TOKEN"`
			Org         string `yaml:"org" env:"DASHBOARD_INFLUX_ORG"`
			Bucket      string `yaml:"bucket" env:"DASHBOARD_INFLUX_BUCKET"`
			Measurement string `yaml:"measurement" env:"DASHBOARD_INFLUX_MEASUREMENT"`
		}{
			Measurement: "sensor_readings",
		},
		Cache: struct {
			Backend    string `yaml:"backend" env:"DASHBOARD_CACHE_BACKEND"`
			TTLSeconds int    `yaml:"ttlSeconds" env:"DASHBOARD_CACHE_TTL"`
		}{
			Backend:    CacheMemory,
			TTLSeconds: 60,
		},
	}

	if err := libconfig.LoadConfig(cfg); err != nil {
		return nil, err
	}

	switch cfg.Warehouse.Driver {
	case DriverPostgres:
		if strings.TrimSpace(cfg.Database.DSN) == "" {
			return nil, errors.New("config: database dsn required")
		}
	case DriverInflux:
		if strings.TrimSpace(cfg.Influx.URL) == "" ||
			strings.TrimSpace(cfg.Influx.Token) == "" ||
			strings.TrimSpace(cfg.Influx.Org) == "" ||
			strings.TrimSpace(cfg.Influx.Bucket) == "" {
			return nil, errors.New("config: influx url, token, org and bucket required")
		}
	default:
		return nil, fmt.Errorf("config: unknown warehouse driver %q", cfg.Warehouse.Driver)
	}

	switch cfg.Cache.Backend {
	case CacheMemory:
	case CacheRedis:
		if strings.TrimSpace(cfg.Redis.Addr) == "" {
			return nil, errors.New("config: redis addr required")
		}
	default:
		return nil, fmt.Errorf("config: unknown cache backend %q", cfg.Cache.Backend)
	}

	return cfg, nil
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8091"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// QueryTTL returns how long cached query results stay fresh.
func (c *Config) QueryTTL() time.Duration {
	if c.Cache.TTLSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// AllowedOrigins returns the CORS origin list, defaulting to any origin.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.CORS.Origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
