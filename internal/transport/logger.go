package transport

import (
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// leveledLogger routes retryablehttp's key/value logging into zerolog.
type leveledLogger struct {
	logger *zerolog.Logger
}

var _ retryablehttp.LeveledLogger = (*leveledLogger)(nil)

func (l *leveledLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error().Fields(keysAndValues).Msg(msg)
}

func (l *leveledLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info().Fields(keysAndValues).Msg(msg)
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn().Fields(keysAndValues).Msg(msg)
}
