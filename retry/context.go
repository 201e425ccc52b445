package retry

import "context"

// Context couples a standard 'context.Context' with the state of the retry loop executing under it, callbacks may
// inspect the attempt number when deciding how to react to a failure.
type Context struct {
	context.Context

	attempt int
}

// NewContext returns a retry context wrapping the given parent, positioned at the first attempt.
func NewContext(parent context.Context) *Context {
	return &Context{Context: parent, attempt: 1}
}

// Attempt returns the one-based number of the attempt currently executing.
func (c *Context) Attempt() int {
	return c.attempt
}
