package log

// packageLogger implements the 'Logger' interface by forwarding to the logger installed via 'SetLogger'; it's used
// where a non-nil 'Logger' is required so that instance based consumers honor the package level logger.
type packageLogger struct{}

var _ Logger = (*packageLogger)(nil)

func (p packageLogger) Log(level Level, format string, args ...any) {
	Logf(level, format, args...)
}
