// Package xlog is the shared structured-logging setup used by the
// packages that log (dataset, arms, rake and cmd/apostat): a single
// zerolog.Logger writing to stderr, with its
// level derived from optio's process-wide verbosity setting.
package xlog

import (
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/halvard/apostat/optio"
)

var (
	once   sync.Once
	logger zerolog.Logger
)

func levelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= optio.VerbositySilent:
		return zerolog.Disabled
	case verbosity == optio.VerbosityWarn:
		return zerolog.WarnLevel
	case verbosity == optio.VerbosityInfo:
		return zerolog.InfoLevel
	default:
		return zerolog.TraceLevel
	}
}

// Logger returns the process-wide logger, built lazily on first use so
// optio.Get() has a chance to observe an explicit Init call first.
func Logger() zerolog.Logger {
	once.Do(func() {
		logger = zerolog.New(os.Stderr).
			With().
			Timestamp().
			Logger().
			Level(levelFor(optio.Get().Verbosity()))
	})
	return logger
}
