package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"
)

// DefaultEndpoint is used when no endpoint_url is configured.
const DefaultEndpoint = "https://api.cumulus.cloud/rest/v3"

// Config holds the client settings consumed by the dispatcher.
type Config struct {
	Username    string `toml:"username"`
	APIKey      string `toml:"api_key"`
	EndpointURL string `toml:"endpoint_url"`
	// Timeout bounds each API call, in seconds.
	Timeout  int    `toml:"timeout"`
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration used before any file is read.
func Default() Config {
	return Config{
		EndpointURL: DefaultEndpoint,
		Timeout:     60,
		LogLevel:    "info",
	}
}

// DefaultPath returns the per-user configuration file path (~/.cumulus).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".cumulus"), nil
}

// Load reads the default configuration file and then merges the optional
// extra file over it. Files that do not exist are skipped, so a fresh
// machine resolves to defaults.
func Load(extraPath string) (*Config, error) {
	cfg := Default()

	defaultPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	for _, path := range []string{defaultPath, extraPath} {
		if path == "" {
			continue
		}
		if err := mergeFile(&cfg, path); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

func mergeFile(cfg *Config, path string) error {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := toml.NewDecoder(file).Decode(cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Write persists cfg to path under an exclusive file lock so concurrent
// invocations cannot interleave writes.
func (c *Config) Write(path string) error {
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock config: %w", err)
	}
	defer lock.Unlock()

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
