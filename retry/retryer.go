// Package retry provides conditional re-execution of fallible functions with configurable backoff.
package retry

import (
	"context"
	"time"

	"github.com/loltools/loltools/maths"
)

// RetryableFunc is a function which may be handed to a retryer for execution.
type RetryableFunc func(ctx *Context) (any, error)

// Retryer re-executes functions until they succeed, their failure is ruled terminal or the attempt budget runs out.
type Retryer struct {
	options RetryerOptions
}

// NewRetryer returns a retryer behaving per the given options, omitted options assume sane defaults.
func NewRetryer(options RetryerOptions) Retryer {
	options.defaults()

	return Retryer{options: options}
}

// Do executes the given function until it's successful.
func (r Retryer) Do(fn RetryableFunc) (any, error) {
	return r.DoWithContext(context.Background(), fn)
}

// DoWithContext executes the given function until it's successful, cancelling the provided context stops the loop
// between attempts and during backoff.
//
// NOTE: On exhaustion the payload of the final attempt is returned alongside the error, it is not cleaned up.
func (r Retryer) DoWithContext(ctx context.Context, fn RetryableFunc) (any, error) {
	var (
		wrapped = NewContext(ctx)
		payload any
		done    bool
		err     error
	)

	for ; wrapped.attempt <= r.options.MaxRetries; wrapped.attempt++ {
		payload, done, err = r.attempt(wrapped, fn)
		if done {
			return payload, err
		}

		// The final failure is reported via the returned error, only the earlier ones are logged
		if r.options.Log != nil && wrapped.attempt != r.options.MaxRetries {
			r.options.Log(wrapped, payload, err)
		}
	}

	return payload, &RetriesExhaustedError{attempts: r.options.MaxRetries, err: err}
}

// attempt performs a single execution of the given function, the boolean indicates whether the loop should stop here
// and surface the returned payload/error as they stand.
func (r Retryer) attempt(ctx *Context, fn RetryableFunc) (any, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, true, &RetriesAbortedError{attempts: ctx.attempt - 1, err: err}
	}

	payload, err := fn(ctx)
	if !r.shouldRetry(ctx, payload, err) {
		return payload, true, err
	}

	// The payload is about to be superseded; the one from the final attempt is kept since callers mine it for error
	// detail
	if r.options.Cleanup != nil && ctx.attempt < r.options.MaxRetries {
		r.options.Cleanup(payload)
	}

	// No backoff follows the final attempt, exhaustion is reported the moment it is known
	if ctx.attempt >= r.options.MaxRetries {
		return payload, false, err
	}

	if err := r.sleep(ctx); err != nil {
		return nil, true, err
	}

	return payload, false, err
}

// shouldRetry returns a boolean indicating whether the attempt which produced the given payload/error warrants
// another go.
func (r Retryer) shouldRetry(ctx *Context, payload any, err error) bool {
	if r.options.ShouldRetry != nil {
		return r.options.ShouldRetry(ctx, payload, err)
	}

	return err != nil
}

// sleep blocks until the backoff for the current attempt has elapsed, or the context is cancelled.
func (r Retryer) sleep(ctx *Context) error {
	timer := time.NewTimer(r.duration(ctx.Attempt()))
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return &RetriesAbortedError{attempts: ctx.attempt, err: ctx.Err()}
	}
}

// duration returns how long to back off after the given attempt.
func (r Retryer) duration(attempt int) time.Duration {
	multiplier := r.multiplier(attempt)

	// Growth outpaces the ceiling long before the multiplication below could overflow, bail out early
	if multiplier > r.options.MaxDelay/r.options.MinDelay {
		return r.options.MaxDelay
	}

	return maths.Clamp(multiplier*r.options.MinDelay, r.options.MinDelay, r.options.MaxDelay)
}

// multiplier returns the growth factor applied to the minimum delay for the given attempt.
//
// NOTE: Attempt numbers are capped at 'maxRetriesLimit' which keeps every multiplier comfortably inside the 64-bit
// delay arithmetic.
func (r Retryer) multiplier(attempt int) time.Duration {
	switch r.options.Algoritmn {
	case AlgoritmnExponential:
		return 1 << attempt
	case AlgoritmnLinear:
		return time.Duration(attempt)
	}

	previous, current := time.Duration(1), time.Duration(1)
	for i := 3; i <= attempt; i++ {
		previous, current = current, previous+current
	}

	return current
}
