package config

import (
	"encoding/json"
	"os"

	"github.com/nextread/nextread-cli/internal/flagx"
)

// JsonConfig is the DTO for the optional JSON config file.
type JsonConfig struct {
	ServerBaseURL string `json:"server_base_url"`
	CachePath     string `json:"cache_path"`
	LogLevel      string `json:"log_level"`
	LogFormat     string `json:"log_format"`
}

// parseJson overlays Config with values from the file named by -c/-config.
// Absent file path means no JSON layer. Fields left empty in the file keep
// their current value. Read or parse errors panic; configuration is settled
// before anything else starts.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.CachePath != "" {
		cfg.CachePath = jc.CachePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
}
