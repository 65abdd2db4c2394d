package debug

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger   = newLogger()
	loggerMu sync.RWMutex
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	return l
}

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if enable {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger.IsLevelEnabled(logrus.DebugLevel)
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
		DisableColors:   disable,
	})
}

// SetOutput redirects debug output. Defaults to stderr.
func SetOutput(w io.Writer) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger.SetOutput(w)
}

// Logger returns the underlying logger. Callers must not change its level
// directly; use SetDebug.
func Logger() *logrus.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	Logger().Debugf(format, args...)
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	if !IsEnabled() {
		return
	}
	Logger().Debugf("=== %s ===", section)
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	if !IsEnabled() {
		return
	}
	Logger().WithFields(logrus.Fields{key: value}).Debug("value")
}
