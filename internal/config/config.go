// Package config holds runtime settings for the blogctl client.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the blogctl CLI.
//
// Fields:
//   - BaseURL: origin of the blog backend, e.g. http://localhost:5000.
//   - TokenFile: path of the file holding the persisted bearer token.
//   - UploadTimeout: timeout applied to multipart image uploads only;
//     ordinary API calls carry no timeout.
//   - SearchDebounce: how long the search screen waits after the query
//     stops changing before hitting the API.
type Config struct {
	BaseURL        string
	TokenFile      string
	UploadTimeout  time.Duration
	SearchDebounce time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:5000"
	c.TokenFile = defaultTokenFile()
	c.UploadTimeout = 30 * time.Second
	c.SearchDebounce = 300 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a JSON file (if jsonPath is non-empty) and the environment. Later sources
// take precedence over earlier ones.
func LoadConfig(jsonPath string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, jsonPath); err != nil {
		return nil, err
	}
	parseEnv(cfg)
	return cfg, nil
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".blogctl_token"
	}
	return filepath.Join(dir, "blogctl", "token")
}
