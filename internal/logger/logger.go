package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ServiceName tags every log line.
const ServiceName = "homeservices"

// Init configures the global zerolog logger. Development gets a console
// writer; everything else gets JSON with caller information.
func Init(dev bool, level string) {
	InitTo(os.Stdout, dev, level)
}

// InitTo is Init with an explicit destination.
func InitTo(out io.Writer, dev bool, level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if dev {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).
			With().
			Timestamp().
			Str("service", ServiceName).
			Logger()
		return
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = zerolog.New(out).
		With().
		Timestamp().
		Caller().
		Str("service", ServiceName).
		Logger()
}

// FromContext returns the request scoped logger, or the global one.
func FromContext(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &log.Logger
}
