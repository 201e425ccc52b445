package log

// Level indicates the verbosity of a log statement.
type Level uint8

const (
	// LevelTrace follows individual requests through the library, extremely chatty.
	LevelTrace Level = iota

	// LevelDebug records detail useful when debugging the library itself.
	LevelDebug

	// LevelInfo highlights the coarse progress of library operations.
	LevelInfo

	// LevelWarning flags expected but noteworthy events, processing continues as normal.
	LevelWarning

	// LevelError records failures the library can survive.
	LevelError

	// LevelPanic is reserved for unrecoverable states, logging at this level precedes a panic.
	LevelPanic
)
