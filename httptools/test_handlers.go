package httptools

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestHandlers routes requests arriving at a test service to per-endpoint handler functions.
type TestHandlers map[string]http.HandlerFunc

// handlerKey builds the map key for a method/endpoint pair, the method is included so the same path may behave
// differently per method.
func handlerKey(method, endpoint string) string {
	return method + ":" + endpoint
}

// Add registers a handler for the given method/endpoint pair.
func (e TestHandlers) Add(method, endpoint string, handler http.HandlerFunc) {
	e[handlerKey(method, endpoint)] = handler
}

// Handle dispatches the given request to the registered handler. Endpoints without a handler receive a 404, the same
// way a live service responds to paths it doesn't serve.
func (e TestHandlers) Handle(writer http.ResponseWriter, request *http.Request) {
	handler, ok := e[handlerKey(request.Method, request.URL.Path)]
	if !ok {
		writer.WriteHeader(http.StatusNotFound)
		return
	}

	handler(writer, request)
}

// NewTestHandler returns the simplest possible handler, every request receives the given status/body.
func NewTestHandler(t *testing.T, status int, body []byte) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(status)

		_, err := writer.Write(body)
		require.NoError(t, err)
	}
}

// NewTestHandlerWithRetries returns a handler simulating a busy endpoint, the first 'numFailures' requests receive
// 'failureStatus' and every request after that receives 'successStatus'. The value of 'after' is echoed in the
// 'Retry-After' header of every response.
func NewTestHandlerWithRetries(t *testing.T, numFailures, failureStatus, successStatus int,
	after string, body []byte,
) http.HandlerFunc {
	var requests int

	return func(writer http.ResponseWriter, request *http.Request) {
		requests++

		status := successStatus
		if requests <= numFailures {
			status = failureStatus
		}

		writer.Header().Set("Retry-After", after)
		writer.WriteHeader(status)

		_, err := writer.Write(body)
		require.NoError(t, err)
	}
}

// NewTestHandlerWithEOF returns a handler which advertises a body then doesn't send one, reading the response body on
// the client side hits an unexpected EOF.
func NewTestHandlerWithEOF(t *testing.T) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Length", "1")
		writer.WriteHeader(http.StatusOK)

		_, err := writer.Write(nil)
		require.NoError(t, err)
	}
}

// NewTestHandlerWithHijack returns a handler which hijacks the connection and slams it shut, simulating a socket
// closed mid-exchange.
func NewTestHandlerWithHijack(t *testing.T) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		hijacker, ok := writer.(http.Hijacker)
		require.True(t, ok)

		conn, _, err := hijacker.Hijack()
		require.NoError(t, err)
		require.NoError(t, conn.Close())
	}
}
