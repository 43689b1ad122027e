// Package logging configures the zerolog logger used by every command.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a logger for the named command. Development gets a
// human-readable console writer; anything else logs JSON lines.
func New(command, env string) zerolog.Logger {
	return NewWithWriter(os.Stdout, command, env)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, command, env string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
		}).With().
			Timestamp().
			Str("cmd", command).
			Logger()
	}
	return zerolog.New(w).
		With().
		Timestamp().
		Str("cmd", command).
		Logger()
}
