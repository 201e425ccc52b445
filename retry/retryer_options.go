package retry

import (
	"time"

	"github.com/loltools/loltools/maths"
)

const (
	// defaultMaxRetries bounds the attempts made when the caller doesn't express a preference.
	defaultMaxRetries = 3

	// maxRetriesLimit caps user supplied retry counts, see 'Retryer.multiplier' for why the cap matters.
	maxRetriesLimit = 50

	defaultMinDelay = 50 * time.Millisecond
	defaultMaxDelay = 2500 * time.Millisecond
)

// Algoritmn enumerates the supported families of backoff growth.
type Algoritmn int

const (
	// AlgoritmnFibonacci grows delays along the fibonacci sequence e.g. 50ms, 50ms, 100ms, 150ms, 250ms.
	AlgoritmnFibonacci Algoritmn = iota

	// AlgoritmnExponential doubles the delay for each attempt e.g. 100ms, 200ms, 400ms, 800ms.
	AlgoritmnExponential

	// AlgoritmnLinear grows delays by a fixed step e.g. 50ms, 100ms, 150ms, 200ms.
	AlgoritmnLinear
)

// LogFunc runs before a failed attempt is retried, typically to surface that the retry is happening.
type LogFunc func(ctx *Context, payload any, err error)

// ShouldRetryFunc decides whether a completed attempt warrants another go, both the payload and the error it produced
// are available for inspection.
//
// NOTE: Without one supplied, every attempt which returned a non-nil error is retried.
type ShouldRetryFunc func(ctx *Context, payload any, err error) bool

// CleanupFunc releases resources held by the payload of a failed attempt which is about to be superseded.
type CleanupFunc func(payload any)

// RetryerOptions tunes how, and how often, a retryer re-executes the functions given to it.
type RetryerOptions struct {
	// Algoritmn selects the backoff growth family, fibonacci when unset.
	Algoritmn Algoritmn

	// MaxRetries bounds the attempts made in total; the name is historical, a value of three yields three attempts,
	// not four.
	MaxRetries int

	// MinDelay is the backoff before the first retry, later delays grow from it.
	MinDelay time.Duration

	// MaxDelay caps the backoff regardless of growth.
	MaxDelay time.Duration

	// ShouldRetry replaces the default retry-on-error rule.
	ShouldRetry ShouldRetryFunc

	// Log runs before each retry, nothing is logged without it.
	Log LogFunc

	// Cleanup runs on the payload of each superseded attempt, the final payload is exempt since callers commonly mine
	// it for error detail.
	Cleanup CleanupFunc
}

func (r *RetryerOptions) defaults() {
	if r.MaxRetries <= 0 {
		r.MaxRetries = defaultMaxRetries
	}

	r.MaxRetries = maths.Min(r.MaxRetries, maxRetriesLimit)

	if r.MinDelay == 0 {
		r.MinDelay = defaultMinDelay
	}

	if r.MaxDelay == 0 {
		r.MaxDelay = defaultMaxDelay
	}
}
