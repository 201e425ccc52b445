// Package log exposes the hooks through which applications control the library's log output.
package log

import "fmt"

// Logger is the interface accepted by 'SetLogger', implement it to route the library's logging anywhere.
type Logger interface {
	Log(level Level, format string, args ...any)
}

// logger receives everything the library logs, it remains nil until 'SetLogger' installs one.
var logger Logger

// SetLogger installs the logger used by the library from this point on.
func SetLogger(l Logger) {
	logger = l
}

// Logf logs directly at the given level, the leveled helpers below are preferred in most places.
//
// NOTE: Until a logger has been installed with 'SetLogger' everything logged is dropped silently.
func Logf(level Level, format string, args ...any) {
	if logger == nil {
		return
	}

	logger.Log(level, format, args...)
}

// Tracef logs the given message at the trace level.
func Tracef(format string, args ...any) {
	Logf(LevelTrace, format, args...)
}

// Debugf logs the given message at the debug level.
func Debugf(format string, args ...any) {
	Logf(LevelDebug, format, args...)
}

// Infof logs the given message at the info level.
func Infof(format string, args ...any) {
	Logf(LevelInfo, format, args...)
}

// Warnf logs the given message at the warning level.
func Warnf(format string, args ...any) {
	Logf(LevelWarning, format, args...)
}

// Errorf logs the given message at the error level.
func Errorf(format string, args ...any) {
	Logf(LevelError, format, args...)
}

// Panicf logs the given message at the panic level, then panics with the same message.
func Panicf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	Logf(LevelPanic, "%s", msg)
	panic(msg)
}
