// Package log provides the logging facade used throughout the
// emulator, backed by logrus.
package log

import (
	"github.com/sirupsen/logrus"
)

// Logger is the logging interface consumed by the emulator
// components.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	*logrus.Logger
}

// New returns a Logger writing human-readable output to stderr.
func New() Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return &logger{l}
}

// NewDebug returns a Logger with the debug level enabled.
func NewDebug() Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	l.SetLevel(logrus.DebugLevel)
	return &logger{l}
}
