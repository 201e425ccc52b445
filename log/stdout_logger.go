package log

import (
	"fmt"
	"time"
)

// stdoutPrefixes maps each level to the four character tag prepended to stdout log lines.
var stdoutPrefixes = map[Level]string{
	LevelTrace:   "TRAC",
	LevelDebug:   "DEBU",
	LevelInfo:    "INFO",
	LevelWarning: "WARN",
	LevelError:   "ERRO",
	LevelPanic:   "PNIC",
}

// StdoutLogger is a no-setup logger which writes each message to standard output behind a timestamp/level prefix.
type StdoutLogger struct{}

var _ Logger = (*StdoutLogger)(nil)

// Log writes the given message to standard output.
func (s StdoutLogger) Log(level Level, format string, args ...any) {
	fmt.Printf("%s %s: %s\n", time.Now().Format(time.RFC3339Nano), stdoutPrefixes[level], fmt.Sprintf(format, args...))
}
