package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadDefaultsWhenNoFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Username != "" || cfg.APIKey != "" {
		t.Fatalf("expected empty credentials, got %#v", cfg)
	}
	if cfg.EndpointURL != DefaultEndpoint {
		t.Fatalf("default endpoint wrong: %s", cfg.EndpointURL)
	}
	if cfg.Timeout != 60 {
		t.Fatalf("default timeout wrong: %d", cfg.Timeout)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("default log level wrong: %s", cfg.LogLevel)
	}
}

func TestLoadParsesTimeoutAndLogLevel(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	writeFile(t, filepath.Join(home, ".cumulus"),
		"timeout = 15\nlog_level = \"debug\"\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Timeout != 15 {
		t.Fatalf("timeout wrong: %d", cfg.Timeout)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level wrong: %s", cfg.LogLevel)
	}
}

func TestLoadMergesExtraFileOverDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	writeFile(t, filepath.Join(home, ".cumulus"),
		"username = \"alice\"\napi_key = \"base-key\"\n")

	extra := filepath.Join(home, "override.toml")
	writeFile(t, extra,
		"api_key = \"override-key\"\nendpoint_url = \"https://alt.example.test\"\n")

	cfg, err := Load(extra)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Username != "alice" {
		t.Fatalf("default file value lost: %s", cfg.Username)
	}
	if cfg.APIKey != "override-key" {
		t.Fatalf("extra file did not override: %s", cfg.APIKey)
	}
	if cfg.EndpointURL != "https://alt.example.test" {
		t.Fatalf("endpoint override lost: %s", cfg.EndpointURL)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".cumulus"), "username = [broken")

	if _, err := Load(""); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Default()
	cfg.Username = "alice"
	cfg.APIKey = "k3y"

	path := filepath.Join(home, ".cumulus")
	if err := cfg.Write(path); err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded, err := Load("")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Username != "alice" || loaded.APIKey != "k3y" {
		t.Fatalf("round trip lost fields: %#v", loaded)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(raw), "api_key = 'k3y'") && !strings.Contains(string(raw), "api_key = \"k3y\"") {
		t.Fatalf("unexpected file contents:\n%s", raw)
	}
}
