package config

import (
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	HTTP struct {
		Port string `yaml:"port" env:"TEST_HTTP_PORT"`
	} `yaml:"http"`
	Database struct {
		DSN     string `yaml:"dsn"`
		MaxConn int    `yaml:"maxConn"`
	} `yaml:"database"`
	Debug bool `yaml:"debug" env:"TEST_DEBUG"`
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	cfg := &testConfig{}
	cfg.HTTP.Port = "8080"

	if err := LoadConfig(cfg); err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.HTTP.Port != "8080" {
		t.Errorf("port = %q, want untouched default 8080", cfg.HTTP.Port)
	}
}

func TestLoadConfigReadsYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("http:\n  port: \"9000\"\ndatabase:\n  dsn: postgres://localhost/app\n  maxConn: 25\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	cfg := &testConfig{}
	if err := LoadConfig(cfg); err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.HTTP.Port != "9000" {
		t.Errorf("port = %q, want 9000", cfg.HTTP.Port)
	}
	if cfg.Database.DSN != "postgres://localhost/app" {
		t.Errorf("dsn = %q", cfg.Database.DSN)
	}
	if cfg.Database.MaxConn != 25 {
		t.Errorf("maxConn = %d, want 25", cfg.Database.MaxConn)
	}
}

func TestLoadConfigEnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("http:\n  port: \"9000\"\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("TEST_HTTP_PORT", "9100")

	cfg := &testConfig{}
	if err := LoadConfig(cfg); err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.HTTP.Port != "9100" {
		t.Errorf("port = %q, want env override 9100", cfg.HTTP.Port)
	}
}

func TestLoadConfigDerivesKeysFromFieldPath(t *testing.T) {
	// Fields without an env tag answer to PARENT_FIELD style keys.
	t.Setenv("DATABASE_DSN", "postgres://localhost/derived")
	t.Setenv("DATABASE_MAXCONN", "7")

	cfg := &testConfig{}
	if err := LoadConfig(cfg); err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Database.DSN != "postgres://localhost/derived" {
		t.Errorf("dsn = %q, want derived-key override", cfg.Database.DSN)
	}
	if cfg.Database.MaxConn != 7 {
		t.Errorf("maxConn = %d, want 7", cfg.Database.MaxConn)
	}
}

func TestLoadConfigParsesBool(t *testing.T) {
	t.Setenv("TEST_DEBUG", "true")

	cfg := &testConfig{}
	if err := LoadConfig(cfg); err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if !cfg.Debug {
		t.Error("debug = false, want true")
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("DATABASE_MAXCONN", "not-a-number")

	cfg := &testConfig{}
	if err := LoadConfig(cfg); err == nil {
		t.Fatal("LoadConfig() accepted a non-numeric int value")
	}
}

func TestLoadConfigRejectsNonPointer(t *testing.T) {
	if err := LoadConfig(testConfig{}); err == nil {
		t.Fatal("LoadConfig() accepted a non-pointer target")
	}
}
