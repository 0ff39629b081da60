// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// LevelEnvVar overrides the default log level when set (debug, info, warn,
// error).
const LevelEnvVar = "LOG_LEVEL"

// Setup installs the default logger. The debug flag wins over LOG_LEVEL;
// jsonFormat switches the handler from text to JSON output. Logs go to
// stderr so report output on stdout stays clean.
func Setup(debug, jsonFormat bool) {
	level := slog.LevelInfo
	if env := os.Getenv(LevelEnvVar); env != "" {
		if parsed, err := ParseLevel(env); err == nil {
			level = parsed
		}
	}
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if jsonFormat {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level: %q", s)
}
