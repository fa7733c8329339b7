package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// InitServerLogger creates the logger used for startup and lifecycle messages.
// Output is colourized console text in dev, JSON otherwise.
func InitServerLogger() *zerolog.Logger {
	var logger zerolog.Logger

	if strings.ToLower(os.Getenv("ENVIRONMENT")) == "dev" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			With().
			Timestamp().
			Logger()
	} else {
		logger = zerolog.New(os.Stdout).
			With().
			Timestamp().
			Logger()
	}

	return &logger
}

// InitHttpLogger creates the logger used by the request logging middleware.
// The supplied level applies to request logs only - the server logger is not affected.
func InitHttpLogger(logLevel zerolog.Level, environment string) *zerolog.Logger {
	var logger zerolog.Logger

	if environment == "dev" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(logLevel).
			With().
			Timestamp().
			Logger()
	} else {
		logger = zerolog.New(os.Stdout).
			Level(logLevel).
			With().
			Timestamp().
			Logger()
	}

	return &logger
}

// ParseLogLevel converts a string log level to a zerolog.Level, defaulting to debug.
func ParseLogLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.DebugLevel
	}
	return parsed
}
