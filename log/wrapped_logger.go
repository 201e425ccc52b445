package log

import "fmt"

// WrappedLogger decorates a 'Logger' with the same leveled helpers the package level API provides.
type WrappedLogger struct {
	Logger
}

// NewWrappedLogger returns a wrapped version of the given logger. When given <nil> logging falls through to the
// logger installed via 'SetLogger', which discards everything until the application installs one.
func NewWrappedLogger(logger Logger) WrappedLogger {
	if logger == nil {
		logger = packageLogger{}
	}

	return WrappedLogger{Logger: logger}
}

// Tracef logs the given message at the trace level.
func (w *WrappedLogger) Tracef(format string, args ...any) {
	w.Log(LevelTrace, format, args...)
}

// Debugf logs the given message at the debug level.
func (w *WrappedLogger) Debugf(format string, args ...any) {
	w.Log(LevelDebug, format, args...)
}

// Infof logs the given message at the info level.
func (w *WrappedLogger) Infof(format string, args ...any) {
	w.Log(LevelInfo, format, args...)
}

// Warnf logs the given message at the warning level.
func (w *WrappedLogger) Warnf(format string, args ...any) {
	w.Log(LevelWarning, format, args...)
}

// Errorf logs the given message at the error level.
func (w *WrappedLogger) Errorf(format string, args ...any) {
	w.Log(LevelError, format, args...)
}

// Panicf logs the given message at the panic level, then panics with the same message.
func (w *WrappedLogger) Panicf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	w.Log(LevelPanic, "%s", msg)
	panic(msg)
}
