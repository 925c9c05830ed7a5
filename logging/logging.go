package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"currency-registry/config"
)

// New returns a JSON logger on stderr at the configured level. In development
// it writes human-readable lines with the caller attached.
func New(cfg *config.Config) zerolog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

func NewWithWriter(cfg *config.Config, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	log := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()

	if cfg.IsDevelopment() {
		log = log.
			Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).
			With().
			Caller().
			Logger()
	}

	return log
}
