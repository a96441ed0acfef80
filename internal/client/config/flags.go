package config

import (
	"flag"
	"os"

	"github.com/nextread/nextread-cli/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the NextRead API
//	-d string   path of the catalogue cache database
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (text, json, pretty)
//
// os.Args is filtered to the flags handled here so -c/-config (owned by the
// JSON layer) does not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the NextRead API")
	fs.StringVar(&cfg.CachePath, "d", cfg.CachePath, "path of the catalogue cache database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
