package main

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestLoadSettingsDefaultsAndRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadSettings()
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.Transport != "uds" || cfg.Server != defaultServer || cfg.Socket != defaultSocket {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	cfg.Transport = "http"
	cfg.Token = "secret"
	if err := saveSettings(cfg); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	loaded, err := loadSettings()
	if err != nil {
		t.Fatalf("reload settings: %v", err)
	}
	if loaded.Transport != "http" || loaded.Token != "secret" {
		t.Fatalf("unexpected reloaded settings: %+v", loaded)
	}
	if loaded.Server != defaultServer {
		t.Fatalf("empty server should fall back to default, got %q", loaded.Server)
	}
}

func TestDecodeAPIError(t *testing.T) {
	wrapped := &http.Response{
		StatusCode: http.StatusConflict,
		Body:       io.NopCloser(strings.NewReader(`{"error": "duplicate key"}`)),
	}
	err := decodeAPIError(wrapped)
	if err == nil || !strings.Contains(err.Error(), "409") || !strings.Contains(err.Error(), "duplicate key") {
		t.Fatalf("unexpected error: %v", err)
	}

	plain := &http.Response{
		StatusCode: http.StatusBadGateway,
		Body:       io.NopCloser(strings.NewReader("upstream unavailable")),
	}
	err = decodeAPIError(plain)
	if err == nil || !strings.Contains(err.Error(), "upstream unavailable") {
		t.Fatalf("unexpected error: %v", err)
	}
}
