package utils

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger builds the process logger. Development gets human-readable
// console output; everything else logs JSON to stdout.
func NewLogger(level, environment string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if environment == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		logger = zerolog.New(os.Stdout)
	}
	return logger.Level(parsed).With().Timestamp().Logger()
}
