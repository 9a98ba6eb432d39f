package logger

import (
	"sync"

	"github.com/lmy441900/libutils/core"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	defaultLogger = New(Config{})
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Output logs a message at the given severity with an explicit call site
// using the default logger
func Output(sev core.Severity, site core.CallSite, format string, args ...any) {
	Default().Output(sev, site, format, args...)
}

// Infof logs an informational message using the default logger
func Infof(format string, args ...any) {
	Default().Output(core.Info, core.Capture(2), format, args...)
}

// Warnf logs a non-blocking warning using the default logger
func Warnf(format string, args ...any) {
	Default().Output(core.WarnNoAck, core.Capture(2), format, args...)
}

// WarnAckf logs a warning requiring acknowledgement using the default logger
func WarnAckf(format string, args ...any) {
	Default().Output(core.WarnAck, core.Capture(2), format, args...)
}

// Errorf logs a fatal error using the default logger and terminates the
// process
func Errorf(format string, args ...any) {
	Default().Output(core.Error, core.Capture(2), format, args...)
}
