// internal/logging/logging.go
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New builds the console logger shared across the CLI. quiet raises the
// level so only errors surface.
func New(w io.Writer, quiet bool) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	level := zerolog.InfoLevel
	if quiet {
		level = zerolog.ErrorLevel
	}
	return zerolog.New(out).With().Timestamp().Str("app", "cdfilter").Logger().Level(level)
}
