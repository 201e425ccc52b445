package netutil

import "net/http"

// IsMethodIdempotent returns a boolean indicating whether requests using the given method may be safely dispatched
// more than once.
func IsMethodIdempotent(method string) bool {
	switch method {
	// Safe methods, they shouldn't modify anything on the remote end
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	// Unsafe but idempotent, repeated requests converge on the same remote state
	case http.MethodPut, http.MethodDelete:
		return true
	}

	return false
}
