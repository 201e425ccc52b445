package httptools

import (
	"bufio"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/loltools/loltools/errutil"
	"github.com/loltools/loltools/keyprov"
	"github.com/loltools/loltools/maths"
	"github.com/loltools/loltools/netutil"
)

// NewHTTPClient returns a HTTP client with the given timeout/transport, every client the library creates comes
// through here so they all share one configuration.
func NewHTTPClient(timeout time.Duration, transport http.RoundTripper) *http.Client {
	return &http.Client{Timeout: timeout, Transport: transport}
}

// enhanceError folds whatever the response can tell us into the given error, a non-nil error is already as good as
// it gets and passes through untouched.
func enhanceError(err error, request *Request, resp *http.Response) error {
	if err != nil || resp == nil {
		return err
	}

	// The body regularly names the actual problem, fold it into the returned error
	defer resp.Body.Close()
	body, _ := ReadBody(request.Method, request.Endpoint, resp.Body, resp.ContentLength)

	return HandleResponseError(request.Method, request.Endpoint, resp.StatusCode, body)
}

// ReadBody buffers the entire response body, a body which ends before the advertised content length results in an
// informative error.
func ReadBody(method Method, endpoint Endpoint, reader io.Reader, contentLength int64) ([]byte, error) {
	body, err := io.ReadAll(bufio.NewReader(reader))
	if err == nil {
		return body, nil
	}

	if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}

	return nil, &UnexpectedEndOfBodyError{method: method, endpoint: endpoint, expected: contentLength, got: len(body)}
}

// SetClientHeaders stamps the client owned headers onto the given request.
func SetClientHeaders(req http.Request, provider keyprov.Provider) *http.Request {
	// The 'User-Agent' identifies us to the API, it's how request handling is traced on their side
	req.Header.Set("User-Agent", provider.GetUserAgent())

	return &req
}

// waitForRetryAfter sleeps for as long as the response asks us to before the next attempt.
//
// NOTE: The 'Retry-After' value is honored up to a ceiling of 60s.
func waitForRetryAfter(resp *http.Response) {
	if resp.StatusCode != http.StatusTooManyRequests && resp.StatusCode != http.StatusServiceUnavailable {
		return
	}

	duration := waitForRetryDuration(resp.Header.Get("Retry-After"))
	if duration <= 0 {
		return
	}

	time.Sleep(maths.Min(duration, time.Minute))
}

// waitForRetryDuration converts a 'Retry-After' value into a duration, the header legally carries either a number of
// seconds or a HTTP date.
func waitForRetryDuration(after string) time.Duration {
	if seconds, err := strconv.Atoi(after); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if date, err := time.Parse(time.RFC1123, after); err == nil {
		return time.Until(date.UTC())
	}

	return 0
}

// HandleRequestError converts a hard request failure, one where no response ever arrived, into a more useful error.
func HandleRequestError(req *http.Request, err error) error {
	// Matching the message prefix catches every certificate error the standard library grows, not just the types
	// known today
	if strings.HasPrefix(errutil.Unwrap(err).Error(), "x509") {
		return &UnknownX509Error{inner: err}
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &SocketClosedInFlightError{method: req.Method, endpoint: req.URL.Path}
	}

	return err
}

// HandleResponseError converts a soft request failure, a response carrying an unwanted status code, into a more
// useful error.
func HandleResponseError(method Method, endpoint Endpoint, statusCode int, body []byte) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return &AuthenticationError{method: method, endpoint: endpoint}
	case http.StatusForbidden:
		return &AuthorizationError{method: method, endpoint: endpoint}
	case http.StatusNotFound:
		return &EndpointNotFoundError{method: method, endpoint: endpoint}
	case http.StatusTooManyRequests:
		return &RateLimitExceededError{method: method, endpoint: endpoint}
	case http.StatusInternalServerError:
		return &InternalServerError{method: method, endpoint: endpoint, Body: body}
	}

	return &UnexpectedStatusCodeError{Status: statusCode, method: method, endpoint: endpoint, Body: body}
}

// ShouldRetry returns a boolean indicating whether the request which returned the given error should be retried.
//
// NOTE: Certificate failures are purposely not retried, dispatching the same request again won't change the outcome.
func ShouldRetry(err error) bool {
	var socketClosed *SocketClosedInFlightError

	return netutil.IsTemporaryError(err) || errors.As(err, &socketClosed)
}
