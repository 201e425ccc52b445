package retry

import (
	"errors"
	"fmt"
)

// RetriesExhaustedError is returned once every attempt in the budget has failed. Unwrapping yields the error from the
// final attempt; this may be nil when a 'ShouldRetry' callback rejected the payloads rather than any attempt failing
// outright.
type RetriesExhaustedError struct {
	attempts int
	err      error
}

func (r *RetriesExhaustedError) Error() string {
	if r.err == nil {
		return fmt.Sprintf("gave up after %d attempts", r.attempts)
	}

	return fmt.Sprintf("gave up after %d attempts, the last attempt failed with: %s", r.attempts, r.err)
}

func (r *RetriesExhaustedError) Unwrap() error {
	return r.err
}

// Attempts returns the number of attempts made before the retryer gave up.
func (r *RetriesExhaustedError) Attempts() int {
	return r.attempts
}

// IsRetriesExhausted returns a boolean indicating whether the given error is a 'RetriesExhaustedError'.
func IsRetriesExhausted(err error) bool {
	var retriesExhausted *RetriesExhaustedError
	return errors.As(err, &retriesExhausted)
}

// RetriesAbortedError is returned when the retry loop stopped before the budget was spent, in practice because the
// supplied context was cancelled or timed out.
type RetriesAbortedError struct {
	attempts int
	err      error
}

func (r *RetriesAbortedError) Error() string {
	if r.err == nil {
		return fmt.Sprintf("aborted after %d attempts", r.attempts)
	}

	return fmt.Sprintf("aborted after %d attempts: %s", r.attempts, r.err)
}

func (r *RetriesAbortedError) Unwrap() error {
	return r.err
}

// IsRetriesAborted returns a boolean indicating whether the given error is a 'RetriesAbortedError'.
func IsRetriesAborted(err error) bool {
	var retriesAborted *RetriesAbortedError
	return errors.As(err, &retriesAborted)
}
