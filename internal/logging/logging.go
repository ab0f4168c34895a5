// Package logging configures structured logging for swatch.
package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var root = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.Kitchen,
}).With().Timestamp().Logger()

// Configure sets the process-wide log level. An empty level falls back to the
// SWATCH_LOG_LEVEL environment variable, then to warn so normal CLI output
// stays clean.
func Configure(level string) error {
	if level == "" {
		level = os.Getenv("SWATCH_LOG_LEVEL")
	}
	if level == "" {
		level = zerolog.WarnLevel.String()
	}
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(parsed)
	return nil
}

// Component returns a logger tagged with the component name.
func Component(name string) zerolog.Logger {
	return root.With().Str("component", name).Logger()
}
