package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds the service logger. A nil writer defaults to stdout.
func New(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stdout
	}
	return zerolog.New(w).With().Timestamp().Logger()
}
