// Package config holds the CLI client's settings.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the todo CLI.
//
// Fields:
//   - ServerURL: base URL of the HTTP API.
//   - TokenFile: where the session token is kept between runs.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	ServerURL      string
	TokenFile      string
	RequestTimeout time.Duration
}

// userHomeDir is a test seam for os.UserHomeDir.
var userHomeDir = os.UserHomeDir

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5000"
	c.TokenFile = defaultTokenFile()
	c.RequestTimeout = 10 * time.Second
}

func defaultTokenFile() string {
	home, err := userHomeDir()
	if err != nil || home == "" {
		return ".todo-token"
	}
	return filepath.Join(home, ".todo-app", "token")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
