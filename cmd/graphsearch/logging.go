package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	logLevelEnv     = "GRAPHSEARCH_LOG_LEVEL"
	defaultLogLevel = "warn"
)

// defaultLevel returns the log level from the environment, or warn.
func defaultLevel() string {
	if v := strings.TrimSpace(os.Getenv(logLevelEnv)); v != "" {
		return v
	}

	return defaultLogLevel
}

// newLogger builds a console logger on w at the named level.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: true}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
