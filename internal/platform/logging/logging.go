// Package logging builds the diagnostic logger for the game binary.
package logging

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// New returns a structured logger writing to w at the given level.
// Diagnostics go to stderr in the binary so stdout carries nothing but the
// game transcript; "disabled" turns logging off entirely.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level %q: %w", level, err)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
