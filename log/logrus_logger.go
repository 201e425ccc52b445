package log

import (
	"github.com/sirupsen/logrus"
)

// LogrusLogger implements the 'Logger' interface dispatching all logging to the provided logrus logger; useful for
// applications which already run logrus and want library logging to land in the same place.
type LogrusLogger struct {
	logger *logrus.Logger
}

var _ Logger = (*LogrusLogger)(nil)

// NewLogrusLogger creates a new logger backed by the given logrus logger, the standard logrus logger is used when
// given <nil>.
func NewLogrusLogger(logger *logrus.Logger) *LogrusLogger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &LogrusLogger{logger: logger}
}

// Log dispatches the given message to the underlying logrus logger at the equivalent logrus level.
func (l *LogrusLogger) Log(level Level, format string, args ...any) {
	l.logger.Logf(logrusLevel(level), format, args...)
}

// logrusLevel converts the given level into the closest logrus equivalent.
//
// NOTE: 'LevelPanic' maps to 'logrus.ErrorLevel' since 'Panicf' already panics after logging; mapping to the logrus
// panic level would panic twice.
func logrusLevel(level Level) logrus.Level {
	switch level {
	case LevelTrace:
		return logrus.TraceLevel
	case LevelDebug:
		return logrus.DebugLevel
	case LevelInfo:
		return logrus.InfoLevel
	case LevelWarning:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}
