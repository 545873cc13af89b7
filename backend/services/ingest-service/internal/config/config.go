package config

import (
	"errors"
	"fmt"
	"strings"

	libconfig "airsense/backend/libs/config"
)

// Config defines ingest service configuration.
type Config struct {
	HTTP struct {
		Port    string `yaml:"port" env:"INGEST_HTTP_PORT"`
		TLSPort string `yaml:"tlsPort" env:"INGEST_HTTPS_PORT"`
	} `yaml:"http"`
	TLS struct {
		CertFile string `yaml:"certFile" env:"INGEST_TLS_CERT"`
		KeyFile  string `yaml:"keyFile" env:"INGEST_TLS_KEY"`
	} `yaml:"tls"`
}

// Load configuration using shared helper.
func Load() (*Config, error) {
	cfg := &Config{
		HTTP: struct {
			Port    string `yaml:"port" env:"INGEST_HTTP_PORT"`
			TLSPort string `yaml:"tlsPort" env:"INGEST_HTTPS_PORT"`
		}{
			Port:    "8090",
			TLSPort: "8443",
		},
	}

	if err := libconfig.LoadConfig(cfg); err != nil {
		return nil, err
	}

	cert := strings.TrimSpace(cfg.TLS.CertFile)
	key := strings.TrimSpace(cfg.TLS.KeyFile)
	if (cert == "") != (key == "") {
		return nil, errors.New("config: tls requires both cert and key files")
	}
	return cfg, nil
}

// TLSEnabled reports whether a certificate pair is configured.
func (c *Config) TLSEnabled() bool {
	return strings.TrimSpace(c.TLS.CertFile) != ""
}

// HTTPAddress returns :port style for the plain listener.
func (c *Config) HTTPAddress() string {
	return address(c.HTTP.Port, "8090")
}

// TLSAddress returns :port style for the TLS listener.
func (c *Config) TLSAddress() string {
	return address(c.HTTP.TLSPort, "8443")
}

func address(port, fallback string) string {
	port = strings.TrimSpace(port)
	if port == "" {
		port = fallback
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
