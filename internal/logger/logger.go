package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New creates the application logger writing structured events to w.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// Default writes to stdout.
func Default() zerolog.Logger {
	return New(os.Stdout)
}
