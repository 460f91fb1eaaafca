package main

import (
	"io"

	"github.com/rs/zerolog"
)

// newLogger writes human-readable lines to w. stdout stays reserved for
// the usage block and the result line.
func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.TimeFormat = "15:04:05.000"
	})).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()
}
