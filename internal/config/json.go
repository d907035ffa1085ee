package config

import (
	"encoding/json"
	"os"
	"time"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// given as strings understood by time.ParseDuration, e.g. "30s" or "250ms".
// After parsing, non-empty values are copied into the runtime Config.
type jsonConfig struct {
	BaseURL        string `json:"base_url"`
	TokenFile      string `json:"token_file"`
	UploadTimeout  string `json:"upload_timeout"`
	SearchDebounce string `json:"search_debounce"`
}

// parseJSON overlays cfg with values loaded from the JSON file at path.
// An empty path is a no-op. Only fields present in the file override the
// current values.
func parseJSON(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.TokenFile != "" {
		cfg.TokenFile = jc.TokenFile
	}
	if jc.UploadTimeout != "" {
		d, err := time.ParseDuration(jc.UploadTimeout)
		if err != nil {
			return err
		}
		cfg.UploadTimeout = d
	}
	if jc.SearchDebounce != "" {
		d, err := time.ParseDuration(jc.SearchDebounce)
		if err != nil {
			return err
		}
		cfg.SearchDebounce = d
	}
	return nil
}
