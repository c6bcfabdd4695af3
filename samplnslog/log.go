// Package samplnslog provides the injectable structured logger used
// throughout samplns-go. There is no process-wide mutable logger: every
// component accepts a *Logger (or nil, meaning "use Default()") through
// its constructor, the same injection-by-parameter idiom the original
// Python implementation uses (logger: logging.Logger = _logger in every
// samplns submodule).
package samplnslog

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps a logrus.FieldLogger so call sites can attach structured
// fields (component, iteration, instance name, ...) without depending
// directly on logrus types outside this package.
type Logger struct {
	entry *logrus.Entry
}

// New builds a Logger writing to stderr at the given level. level may be
// any logrus.Level; an invalid value falls back to logrus.InfoLevel.
func New(level logrus.Level) *Logger {
	valid := false
	for _, lv := range logrus.AllLevels {
		if lv == level {
			valid = true
		}
	}
	if !valid {
		level = logrus.InfoLevel
	}

	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return &Logger{entry: logrus.NewEntry(l)}
}

// defaultLogger is created at package initialization and only used when a component is
// constructed with a nil *Logger; it is never mutated by callers.
var defaultLogger = New(logrus.InfoLevel)

// Default returns the package's fallback logger (info level, stderr).
func Default() *Logger { return defaultLogger }

// With returns a child Logger with additional structured fields
// attached, mirroring logging.Logger.getChild used by the Python
// UniverseMapping for sub-component loggers.
func (l *Logger) With(fields logrus.Fields) *Logger {
	if l == nil {
		l = defaultLogger
	}

	return &Logger{entry: l.entry.WithFields(fields)}
}

func (l *Logger) resolve() *logrus.Entry {
	if l == nil {
		return defaultLogger.entry
	}

	return l.entry
}

func (l *Logger) Debugf(format string, args ...interface{}) { l.resolve().Debugf(format, args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.resolve().Infof(format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.resolve().Warnf(format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.resolve().Errorf(format, args...) }
