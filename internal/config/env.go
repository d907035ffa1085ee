package config

import "os"

// Environment variable names recognized by the client.
const (
	EnvAPIURL    = "BLOGCTL_API_URL"
	EnvTokenFile = "BLOGCTL_TOKEN_FILE"
)

// parseEnv overlays cfg with values from the environment. Environment values
// win over defaults and the JSON file.
func parseEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvTokenFile); v != "" {
		cfg.TokenFile = v
	}
}
