package lolrest

import (
	"errors"
	"fmt"
)

var (
	// ErrNoKeyProvider is returned if the user attempts to create a client without a key provider; the service
	// rejects every unauthenticated request so there is no meaningful client without one.
	ErrNoKeyProvider = errors.New("a key provider is required")
)

// UnknownEndpointError is returned when attempting to build a request for an endpoint name outside the registry; no
// URI is produced.
type UnknownEndpointError struct {
	id EndpointID
}

func (e *UnknownEndpointError) Error() string {
	return fmt.Sprintf("unknown endpoint '%s', supported endpoints are %v", e.id, Endpoints())
}

// IsUnknownEndpoint returns a boolean indicating whether the given error is an 'UnknownEndpointError'.
func IsUnknownEndpoint(err error) bool {
	var unknownEndpoint *UnknownEndpointError
	return err != nil && errors.As(err, &unknownEndpoint)
}

// UnknownRegionError is returned when a region code outside the closed set is supplied; region validity is
// established when the client is configured so request construction never trips over it.
type UnknownRegionError struct {
	region Region
}

func (e *UnknownRegionError) Error() string {
	return fmt.Sprintf("unknown region '%s', supported regions are %v", e.region, Regions())
}

// IsUnknownRegion returns a boolean indicating whether the given error is an 'UnknownRegionError'.
func IsUnknownRegion(err error) bool {
	var unknownRegion *UnknownRegionError
	return err != nil && errors.As(err, &unknownRegion)
}

// InvalidParameterValueError is returned when a parameter value cannot be serialized into a URI component; the
// request is rejected before any I/O takes place.
type InvalidParameterValueError struct {
	name   string
	value  any
	reason string
}

func (e *InvalidParameterValueError) Error() string {
	return fmt.Sprintf("invalid value '%v' for parameter '%s': %s", e.value, e.name, e.reason)
}

// IsInvalidParameterValue returns a boolean indicating whether the given error is an 'InvalidParameterValueError'.
func IsInvalidParameterValue(err error) bool {
	var invalidParameter *InvalidParameterValueError
	return err != nil && errors.As(err, &invalidParameter)
}

// DecodeError is returned when a response body could not be decoded into the expected structure.
type DecodeError struct {
	err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response body: %s", e.err)
}

func (e *DecodeError) Unwrap() error {
	return e.err
}
