package transport

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// restyLogger routes resty messages to the global zerolog logger
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) {
	log.Error().Msgf(strings.TrimSpace(format), v...)
}

func (restyLogger) Warnf(format string, v ...interface{}) {
	log.Warn().Msgf(strings.TrimSpace(format), v...)
}

func (restyLogger) Debugf(format string, v ...interface{}) {
	log.Debug().Msgf(strings.TrimSpace(format), v...)
}
