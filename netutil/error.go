package netutil

import (
	"errors"
	"net"
	"strings"

	"golang.org/x/exp/slices"
)

// TemporaryErrorMessages is a slice of known error messages returned by the standard library for network failures
// which generally resolve themselves; matching is a last resort for the errors which expose no useful type.
var TemporaryErrorMessages = []string{
	"bad record MAC",                   // src/crypto/tls/alert.go
	"broken pipe",                      // src/syscall/zerrors_linux_amd64.go
	"connection refused",               // src/syscall/zerrors_linux_amd64.go
	"connection reset",                 // src/syscall/zerrors_linux_amd64.go
	"connection timed out",             // src/syscall/zerrors_linux_amd64.go
	"http: ContentLength=",             // src/net/http/transfer.go
	"i/o timeout",                      // src/net/net.go
	"net/http: TLS handshake timeout",  // src/net/http/transport.go
	"server closed idle connection",    // src/net/http/transport.go
	"stream error:",                    // src/net/http/h2_bundle.go
	"transport connection broken",      // src/net/http/transport.go
	"unexpected EOF reading trailer",   // src/net/http/transfer.go
	"use of closed network connection", // src/internal/poll/fd.go
}

// IsTemporaryError returns a boolean indicating whether the provided error represents a temporary failure, one where
// dispatching the same request again has a reasonable chance of succeeding.
//
// NOTE: Certificate validation failures deliberately fall through to false, retrying those only delays the
// inevitable.
func IsTemporaryError(err error) bool {
	if err == nil {
		return false
	}

	if isTransientNetError(err) {
		return true
	}

	type temporary interface {
		Temporary() bool
	}

	if t, ok := err.(temporary); ok && t.Temporary() {
		return true
	}

	msg := err.Error()

	return slices.ContainsFunc(TemporaryErrorMessages, func(known string) bool { return strings.Contains(msg, known) })
}

// isTransientNetError returns a boolean indicating whether the error chain contains one of the 'net' error types
// known to clear up on their own; failures to dial are included, failures mid-exchange are not.
func isTransientNetError(err error) bool {
	var (
		dnsError     *net.DNSError
		unknownError net.UnknownNetworkError
		opError      *net.OpError
	)

	switch {
	case errors.As(err, &dnsError), errors.As(err, &unknownError):
		return true
	case errors.As(err, &opError):
		return opError.Op == "dial"
	}

	return false
}
