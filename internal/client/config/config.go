// Package config loads runtime settings for the NextRead CLI.
//
// Sources are layered, later ones winning: built-in defaults, environment
// variables, a JSON file (-c/-config), then command-line flags.
package config

// Config holds everything the client is allowed to configure. Note there is
// deliberately no request timeout or retry knob: every API call is a single
// best-effort attempt.
type Config struct {
	// ServerBaseURL is the root of the NextRead HTTP API.
	ServerBaseURL string `env:"NEXTREAD_API_URL"`

	// CachePath is the sqlite file holding the catalogue fallback snapshot.
	CachePath string `env:"NEXTREAD_CACHE_PATH"`

	// LogLevel is the minimum level: debug, info, warn, error.
	LogLevel string `env:"NEXTREAD_LOG_LEVEL"`

	// LogFormat selects the logging backend: text, json or pretty.
	LogFormat string `env:"NEXTREAD_LOG_FORMAT"`
}

// LoadDefaults populates c with the out-of-the-box settings.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080/api"
	c.CachePath = "nextread.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays environment
// variables, JSON (if a file was named) and flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
