package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats selectable through configuration.
const (
	FormatText   = "text"   // slog text handler
	FormatJSON   = "json"   // zerolog JSON
	FormatPretty = "pretty" // zerolog console writer
)

// New builds a Logger writing to out in the requested format and minimum
// level. Unrecognised format falls back to text, unrecognised level to info.
func New(format, level string, out io.Writer) Logger {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		return NewZerologLogger(newZerolog(out, level, false))
	case FormatPretty:
		return NewZerologLogger(newZerolog(out, level, true))
	default:
		h := slog.NewTextHandler(out, &slog.HandlerOptions{Level: slogLevel(level)})
		return NewSlogLogger(slog.New(h))
	}
}

func newZerolog(out io.Writer, level string, pretty bool) zerolog.Logger {
	if pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(zerologLevel(level)).With().Timestamp().Logger()
}

func slogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func zerologLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
