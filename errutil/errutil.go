// Package errutil provides error inspection helpers missing from the standard 'errors' package.
package errutil

import (
	"errors"
	"strings"
)

// Contains returns a boolean indicating whether the message of the given error contains the given substring, a <nil>
// error contains nothing.
//
// Matching on message text is a last resort, it exists for errors which the standard library exposes with no
// distinguishing type or sentinel.
func Contains(err error, substr string) bool {
	return err != nil && strings.Contains(err.Error(), substr)
}

// Unwrap follows the error chain to its end and returns the root error.
//
// Unlike 'errors.Unwrap' this never turns a non-nil error into nil, an unwrappable error is its own root.
func Unwrap(err error) error {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}

		err = unwrapped
	}
}
