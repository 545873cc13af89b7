package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTPAddress() != ":8090" {
		t.Errorf("HTTPAddress() = %q, want :8090", cfg.HTTPAddress())
	}
	if cfg.TLSAddress() != ":8443" {
		t.Errorf("TLSAddress() = %q, want :8443", cfg.TLSAddress())
	}
	if cfg.TLSEnabled() {
		t.Error("TLSEnabled() = true without a certificate pair")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("INGEST_HTTP_PORT", "9090")
	t.Setenv("INGEST_HTTPS_PORT", "9443")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTPAddress() != ":9090" {
		t.Errorf("HTTPAddress() = %q, want :9090", cfg.HTTPAddress())
	}
	if cfg.TLSAddress() != ":9443" {
		t.Errorf("TLSAddress() = %q, want :9443", cfg.TLSAddress())
	}
}

func TestLoadTLSPair(t *testing.T) {
	t.Setenv("INGEST_TLS_CERT", "/etc/airsense/server.crt")
	t.Setenv("INGEST_TLS_KEY", "/etc/airsense/server.key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.TLSEnabled() {
		t.Error("TLSEnabled() = false with both files configured")
	}
}

func TestLoadRejectsHalfTLSPair(t *testing.T) {
	t.Setenv("INGEST_TLS_CERT", "/etc/airsense/server.crt")

	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted a certificate without a key")
	}
}

func TestAddressNormalizesColonPrefix(t *testing.T) {
	t.Setenv("INGEST_HTTP_PORT", ":7070")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTPAddress() != ":7070" {
		t.Errorf("HTTPAddress() = %q, want :7070", cfg.HTTPAddress())
	}
}
