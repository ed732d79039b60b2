package services

import (
	"sitegate-http-service/config"
)

// EventLogger is the observability side channel injected into services.
// Warning-level domain events (negative duration clamps, best-effort
// side-effect failures) go through here instead of ambient output.
type EventLogger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type configEventLogger struct{}

// NewEventLogger returns an EventLogger backed by the leveled config
// loggers.
func NewEventLogger() EventLogger {
	return &configEventLogger{}
}

func (l *configEventLogger) Infof(format string, args ...interface{}) {
	config.Info(format, args...)
}

func (l *configEventLogger) Warnf(format string, args ...interface{}) {
	config.Warning(format, args...)
}

func (l *configEventLogger) Errorf(format string, args ...interface{}) {
	config.Error(format, args...)
}
