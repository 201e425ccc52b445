package httptools

import "time"

const (
	// DefaultClientTimeout bounds a single connection/attempt, each retry gets a fresh allowance.
	DefaultClientTimeout = time.Minute

	// DefaultRequestTimeout bounds a request end to end, retries and backoff sleeps spend from the same budget.
	DefaultRequestTimeout = time.Minute

	// DefaultRequestRetries is the total number of attempts made for requests dispatched via 'ExecuteWithRetries'
	// before giving up.
	DefaultRequestRetries = 3
)
