package httptools

import (
	"net/http"
	"net/url"
	"time"

	"github.com/loltools/loltools/netutil"
)

// Method is a readability wrapper around the HTTP method for a request.
type Method string

// MethodGet is the only method exposed by the API, requests which modify remote state don't exist.
const MethodGet Method = http.MethodGet

// Request encapsulates the parameters/options which are required when sending a REST request.
type Request struct {
	// Host is the fully qualified host the request will be dispatched to, including the schema.
	Host string

	// Method is the HTTP method used when dispatching the request.
	Method Method

	// Endpoint is the path component of the request.
	Endpoint Endpoint

	// QueryParameters will be encoded and postfixed to the request URL when non-empty.
	QueryParameters url.Values

	// Header is a set of additional headers supplied with the request, values set here take lower precedence than
	// those set by the client itself.
	Header map[string]string

	// ExpectedStatusCode is the status code which indicates the request completed successfully, anything else results
	// in an informative error.
	ExpectedStatusCode int

	// Idempotent marks the request as retryable in the case where the request method alone doesn't indicate that it
	// is.
	Idempotent bool

	// RetryOnStatusCodes is a list of additional status codes which should be retried when retries are enabled.
	RetryOnStatusCodes []int

	// NoRetryOnStatusCodes is a list of status codes which shouldn't be retried, this takes precedence over
	// 'RetryOnStatusCodes'.
	NoRetryOnStatusCodes []int

	// Timeout allows overriding the client level timeout for an individual request, a value of -1 indicates no
	// timeout.
	Timeout time.Duration
}

// IsIdempotent returns a boolean indicating whether this request is idempotent and may be retried.
func (r *Request) IsIdempotent() bool {
	return r.Idempotent || netutil.IsMethodIdempotent(string(r.Method))
}

// Response encapsulates a REST response, the body is fully read/buffered by the client before being returned.
type Response struct {
	StatusCode int
	Body       []byte
}
