package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns the root logger for a binary. Everything downstream receives
// a child of this logger instead of constructing its own.
func New(service string) zerolog.Logger {
	return zerolog.New(os.Stdout).With().Timestamp().Str("service", service).Logger()
}
