package httptools

import (
	"errors"
	"fmt"
)

// SocketClosedInFlightError is returned when the connection drops mid-request, generally the remote end hanging up on
// us.
type SocketClosedInFlightError struct {
	method   string
	endpoint string
}

func (e *SocketClosedInFlightError) Error() string {
	return fmt.Sprintf("error executing '%s' request to '%s' socket closed in flight, check the logs for more details",
		e.method, e.endpoint)
}

// UnexpectedEndOfBodyError is returned when the response body ends before the advertised 'Content-Length', the header
// lied or the exchange was cut short.
type UnexpectedEndOfBodyError struct {
	method   Method
	endpoint Endpoint
	expected int64
	got      int
}

func (e *UnexpectedEndOfBodyError) Error() string {
	return fmt.Sprintf("unexpected EOF whilst reading response body for '%s' request to '%s', expected %d bytes but "+
		"got %d", e.method, e.endpoint, e.expected, e.got)
}

// UnknownX509Error wraps certificate verification failures which have no more specific handling, callers generally
// need to supply/fix their TLS configuration rather than retry.
type UnknownX509Error struct {
	inner error
}

func (e *UnknownX509Error) Unwrap() error {
	return e.inner
}

func (e *UnknownX509Error) Error() string {
	return e.inner.Error()
}

// RetriesExhaustedError is returned when a request dispatched with retries enabled failed every attempt, it wraps the
// error from the final attempt.
type RetriesExhaustedError struct {
	retries int
	err     error
}

func (e *RetriesExhaustedError) Error() string {
	return fmt.Sprintf("gave up after %d dispatches, the last failed with: %s", e.retries, e.Unwrap())
}

func (e *RetriesExhaustedError) Unwrap() error {
	return e.err
}

// AuthenticationError is returned for a 401, the supplied API key is invalid, expired or missing entirely.
type AuthenticationError struct {
	method   Method
	endpoint Endpoint
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication error executing '%s' request to '%s' check the API key", e.method, e.endpoint)
}

// AuthorizationError is returned for a 403, the API key is valid but doesn't grant access to the requested resource.
type AuthorizationError struct {
	method   Method
	endpoint Endpoint
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("permission error executing '%s' request to '%s', the API key is missing the required access",
		e.method, e.endpoint)
}

// EndpointNotFoundError is returned for a 404, either the route doesn't exist on the remote or the requested entity
// doesn't.
type EndpointNotFoundError struct {
	method   Method
	endpoint Endpoint
}

func (e *EndpointNotFoundError) Error() string {
	return fmt.Sprintf("received an unexpected 404 status executing '%s' request to '%s' check the logs for "+
		"more details", e.method, e.endpoint)
}

// IsEndpointNotFound returns a boolean indicating whether the given error is an 'EndpointNotFoundError'.
func IsEndpointNotFound(err error) bool {
	var notFound *EndpointNotFoundError
	return err != nil && errors.As(err, &notFound)
}

// RateLimitExceededError is returned for a 429, the API key burned through its request quota and the remote has begun
// rejecting requests.
type RateLimitExceededError struct {
	method   Method
	endpoint Endpoint
}

func (e *RateLimitExceededError) Error() string {
	return fmt.Sprintf("rate limit exceeded executing '%s' request to '%s', slow down before sending another request",
		e.method, e.endpoint)
}

// IsRateLimitExceeded returns a boolean indicating whether the given error is a 'RateLimitExceededError'.
func IsRateLimitExceeded(err error) bool {
	var rateLimitExceeded *RateLimitExceededError
	return err != nil && errors.As(err, &rateLimitExceeded)
}

// InternalServerError is returned for a 500, the body is attached when the remote supplied one since it occasionally
// names the actual problem.
type InternalServerError struct {
	method   Method
	endpoint Endpoint
	Body     []byte
}

func (e *InternalServerError) Error() string {
	if e.Body != nil {
		return fmt.Sprintf("internal server error executing '%s' request to '%s': %s", e.method, e.endpoint, e.Body)
	}

	return fmt.Sprintf("internal server error executing '%s' request to '%s' check the logs for more details",
		e.method, e.endpoint)
}

// UnexpectedStatusCodeError is the catch-all for responses whose status has no dedicated error type, the request
// itself completed fine.
type UnexpectedStatusCodeError struct {
	Status   int
	method   Method
	endpoint Endpoint
	Body     []byte
}

func (e *UnexpectedStatusCodeError) Error() string {
	msg := fmt.Sprintf("unexpected status code %d for '%s' request to '%s'", e.Status, e.method, e.endpoint)
	if len(e.Body) == 0 {
		msg += ", check the logs for more details"
	} else {
		msg += fmt.Sprintf(", %s", e.Body)
	}

	return msg
}
