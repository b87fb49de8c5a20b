package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if cfg.ServerURL != "http://127.0.0.1:8080" {
		t.Errorf("unexpected default server url: %s", cfg.ServerURL)
	}
}

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-a", "http://example.com:9090"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	if cfg.ServerURL != "http://example.com:9090" {
		t.Errorf("flag overlay not applied: %s", cfg.ServerURL)
	}
}

func TestParseJson(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"server_url": "http://json.example:1234"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	os.Args = []string{"cmd", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	if cfg.ServerURL != "http://json.example:1234" {
		t.Errorf("json overlay not applied: %s", cfg.ServerURL)
	}
}
