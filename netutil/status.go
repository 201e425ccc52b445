// Package netutil provides network related utilities, mostly concerned with classifying HTTP failures.
package netutil

import (
	"net/http"

	"golang.org/x/exp/slices"
)

// TemporaryFailureStatusCodes is a slice of temporary status codes which should be retried by default.
var TemporaryFailureStatusCodes = []int{
	http.StatusTooManyRequests,
	http.StatusBadGateway,
	http.StatusServiceUnavailable,
	http.StatusGatewayTimeout,
}

// IsTemporaryFailure returns a boolean indicating whether the provided status code represents a temporary error and
// should be retried.
func IsTemporaryFailure(status int) bool {
	return slices.Contains(TemporaryFailureStatusCodes, status)
}
