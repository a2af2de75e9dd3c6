package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("app", "qasin").
		Logger()
}
