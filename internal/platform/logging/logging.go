// Package logging builds the zerolog loggers used by the binaries.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a logger writing to out at the given level.
//
// format selects the encoding: "console" renders human-readable output for
// local development, anything else emits JSON lines. Unknown levels fall
// back to info.
func New(out io.Writer, level, format string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	if strings.EqualFold(strings.TrimSpace(format), "console") {
		out = zerolog.ConsoleWriter{Out: out, NoColor: true}
	}

	return zerolog.New(out).Level(parsed).With().Timestamp().Logger()
}
