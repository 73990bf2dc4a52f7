package logging

import (
	"github.com/sirupsen/logrus"
)

// NewLogger builds a logrus logger with JSON output at the given level;
// unknown levels fall back to info.
func NewLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
	return logger
}

// EngineAdapter bridges a logrus logger to the engine's Logger interface.
type EngineAdapter struct {
	L *logrus.Logger
}

func (a EngineAdapter) Debugf(format string, args ...any) { a.L.Debugf(format, args...) }
func (a EngineAdapter) Infof(format string, args ...any)  { a.L.Infof(format, args...) }
func (a EngineAdapter) Warnf(format string, args ...any)  { a.L.Warnf(format, args...) }
func (a EngineAdapter) Errorf(format string, args ...any) { a.L.Errorf(format, args...) }
