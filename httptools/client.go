package httptools

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/loltools/loltools/errutil"
	"github.com/loltools/loltools/keyprov"
	"github.com/loltools/loltools/log"
	"github.com/loltools/loltools/maths"
	"github.com/loltools/loltools/netutil"
	"github.com/loltools/loltools/retry"

	"golang.org/x/exp/slices"
	"golang.org/x/time/rate"
)

// Client is a generalized client for dispatching REST requests which wraps a standard 'http.Client' with error
// handling, request/response logging and optional request retrying/rate limiting.
type Client struct {
	client         *http.Client
	reqResLogLevel log.Level
	logger         log.WrappedLogger
	requestRetries int
	keyProvider    keyprov.Provider

	limiter *rate.Limiter
	retryer *retry.Retryer
}

// ClientOptions wraps all the optional parameters for client creation.
type ClientOptions struct {
	// RequestRetries is the number of times a request dispatched via 'ExecuteWithRetries' should be retried.
	//
	// NOTE: Requests dispatched via 'Execute' are never retried.
	RequestRetries int

	// ReqResLogLevel is the level at which request dispatch/response receipt should be logged, defaulting to the
	// trace level.
	ReqResLogLevel log.Level

	// Limiter is applied before dispatching each request (including retries) when non-nil. This is the client side
	// half of remaining within the rate limits imposed on an API key.
	Limiter *rate.Limiter

	// Retryer replaces the retryer built per-request when non-nil, at which point the retry related fields of
	// 'Request' are ignored and the supplied retryer is used as given.
	//
	// The per-request retryer uses 'RequestRetries' as its attempt count with otherwise default behavior, retrying on
	// temporary failures plus anything the request's own status code lists allow.
	Retryer *retry.Retryer
}

// NewClient creates a new REST client which dispatches requests using the given base 'http.Client', attaching the
// key/agent returned by the given provider to each request.
func NewClient(client *http.Client, keyProvider keyprov.Provider, logger log.Logger, options ClientOptions) *Client {
	return &Client{
		client:         client,
		reqResLogLevel: options.ReqResLogLevel,
		logger:         log.NewWrappedLogger(logger),
		requestRetries: options.RequestRetries,
		keyProvider:    keyProvider,
		limiter:        options.Limiter,
		retryer:        options.Retryer,
	}
}

// RequestRetries returns the number of times a retriable request will be retried for known failure cases.
func (c *Client) RequestRetries() int {
	return c.requestRetries
}

// GetBaseHTTPClient returns a copy of the underlying 'http.Client', mutating the copy affects nothing.
func (c *Client) GetBaseHTTPClient() http.Client {
	return *c.client
}

// Execute the given request to completion, using the provided context, reading the entire response body. The request
// is dispatched exactly once, any failure is returned to the caller as is.
func (c *Client) Execute(ctx context.Context, request *Request) (*Response, error) {
	resp, err := c.buildAndDo(retry.NewContext(ctx), request) //nolint:bodyclose
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	return c.finalize(request, resp)
}

// ExecuteWithRetries executes the given request to completion, reading the entire response body, with failed
// attempts retried as the request/client configuration dictates.
func (c *Client) ExecuteWithRetries(ctx context.Context, request *Request) (*Response, error) {
	resp, err := c.Do(ctx, request) //nolint:bodyclose
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	return c.finalize(request, resp)
}

// finalize buffers the response body and converts unexpected status codes into informative errors; the raw response
// is always cleaned up before returning.
func (c *Client) finalize(request *Request, resp *http.Response) (*Response, error) {
	defer c.CleanupResp(resp)

	body, err := ReadBody(request.Method, request.Endpoint, resp.Body, resp.ContentLength)
	if err != nil {
		return &Response{StatusCode: resp.StatusCode}, fmt.Errorf("failed to read response body: %w", err)
	}

	response := &Response{StatusCode: resp.StatusCode, Body: body}

	if response.StatusCode != request.ExpectedStatusCode {
		return response, HandleResponseError(request.Method, request.Endpoint, response.StatusCode, response.Body)
	}

	return response, nil
}

// Do executes the provided request and returns the raw HTTP response. Most callers are better served by
// 'ExecuteWithRetries' which buffers the body, closes resources and returns more informative errors.
//
// NOTE: If the returned error is nil, the Response will contain a non-nil Body which the caller is expected to close.
func (c *Client) Do(ctx context.Context, request *Request) (*http.Response, error) {
	retryer := c.retryer
	if retryer == nil {
		retryer = c.newDefaultRetryer(request)
	}

	payload, err := retryer.DoWithContext(
		ctx,
		func(ctx *retry.Context) (any, error) { return c.buildAndDo(ctx, request) }, //nolint:bodyclose
	)

	// The payload is nil if the retryer gave up before performing the first attempt
	resp, _ := payload.(*http.Response)

	if err == nil || (resp != nil && resp.StatusCode == request.ExpectedStatusCode) {
		return resp, err
	}

	// Failures beyond this point mean the response never reaches the caller, it gets cleaned up here instead
	defer c.CleanupResp(resp)

	// Spell out what was lost once the attempt budget ran dry, the generic retry error says too little. The attempt
	// count comes from the retryer itself, its defaults may have clamped the configured value.
	var exhausted *retry.RetriesExhaustedError
	if errors.As(err, &exhausted) {
		err = &RetriesExhaustedError{retries: exhausted.Attempts(), err: enhanceError(exhausted.Unwrap(), request, resp)}
	}

	return nil, err
}

// newDefaultRetryer creates a retryer which respects the retry related parameters in the given request.
func (c *Client) newDefaultRetryer(request *Request) *retry.Retryer {
	shouldRetry := func(ctx *retry.Context, payload any, err error) bool {
		if resp, ok := payload.(*http.Response); ok && resp != nil {
			return c.shouldRetryWithResponse(ctx, request, resp)
		}

		return c.shouldRetryWithError(ctx, request, err)
	}

	logRetry := func(ctx *retry.Context, payload any, err error) {
		outcome := fmt.Sprintf("failed due to error: %s", err)
		if err == nil {
			outcome = fmt.Sprintf("failed with status code %d", payload.(*http.Response).StatusCode)
		}

		// Failed requests are routine here and surfaced to the caller, warn rather than error
		c.logger.Warnf("(REST) (Attempt %d) (%s) Retrying request to endpoint '%s': which %s", ctx.Attempt(),
			request.Method, request.Endpoint, outcome)
	}

	cleanup := func(payload any) {
		if resp, ok := payload.(*http.Response); ok && resp != nil {
			c.CleanupResp(resp)
		}
	}

	retryer := retry.NewRetryer(retry.RetryerOptions{
		MaxRetries:  c.requestRetries,
		ShouldRetry: shouldRetry,
		Log:         logRetry,
		Cleanup:     cleanup,
	})

	return &retryer
}

// buildAndDo runs a single attempt end to end, waiting on the limiter then preparing and performing the request.
func (c *Client) buildAndDo(ctx *retry.Context, request *Request) (*http.Response, error) {
	if c.limiter != nil {
		err := c.limiter.Wait(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to wait for rate limiter: %w", err)
		}
	}

	prep, err := c.prepare(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare request: %w", err)
	}

	resp, err := c.perform(ctx, prep, c.reqResLogLevel, request.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}

	return resp, nil
}

// prepare converts the request into a raw HTTP request which can be dispatched to the service. Uses the same context
// meaning the request timeout is not reset by retries.
func (c *Client) prepare(ctx *retry.Context, request *Request) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, string(request.Method), request.Host+string(request.Endpoint), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if len(request.QueryParameters) != 0 {
		req.URL.RawQuery = request.QueryParameters.Encode()
	}

	// Request supplied headers go in first, the client owned headers set below must win any collision
	for key, value := range request.Header {
		req.Header.Set(key, value)
	}

	return SetClientHeaders(*req, c.keyProvider), nil
}

// perform dispatches the prepared request over the wire, logging the request/response exchange at the configured
// level.
func (c *Client) perform(ctx *retry.Context, req *http.Request, level log.Level,
	timeout time.Duration,
) (*http.Response, error) {
	// The API key travels in the query string, ensure it doesn't end up in the logs
	url := log.MaskQueryValues(req.URL.String(), "api_key")

	c.logger.Log(level, "(REST) (Attempt %d) (%s) Dispatching request to '%s'", ctx.Attempt(), req.Method, url)

	client := c.client

	// A request level timeout only takes effect when it outlasts the client level one, keeping the environment
	// configured client timeout authoritative otherwise
	if timeout == -1 || timeout > client.Timeout {
		client = NewHTTPClient(maths.Max(0, timeout), client.Transport)
	}

	resp, err := client.Do(req)
	if err == nil {
		c.logger.Log(level, "(REST) (Attempt %d) (%s) (%d) Received response from '%s'", ctx.Attempt(), req.Method,
			resp.StatusCode, url)

		return resp, nil
	}

	c.logger.Errorf("(REST) (Attempt %d) (%s) Failed to perform request to '%s': %s", ctx.Attempt(), req.Method, url,
		err)

	return nil, HandleRequestError(req, err)
}

// shouldRetryWithError returns a boolean indicating whether the request which failed with the given error should be
// retried.
func (c *Client) shouldRetryWithError(ctx *retry.Context, request *Request, err error) bool {
	c.logger.Warnf("(REST) (Attempt %d) (%s) Request to endpoint '%s' failed due to error: %s", ctx.Attempt(),
		request.Method, request.Endpoint, err)

	return ShouldRetry(err)
}

// shouldRetryWithResponse returns a boolean indicating whether the request which received the given response should be
// retried. If the response contains a 'Retry-After' header this will block for the given duration before returning.
func (c *Client) shouldRetryWithResponse(ctx *retry.Context, request *Request, resp *http.Response) bool {
	// Got the status we wanted, nothing to retry
	if resp.StatusCode == request.ExpectedStatusCode {
		return false
	}

	c.logger.Warnf("(REST) (Attempt %d) (%s) Request to endpoint '%s' failed with status code %d", ctx.Attempt(),
		request.Method, request.Endpoint, resp.StatusCode)

	// A non-idempotent request is never retried, nor is any status code the request explicitly opted out of
	if !request.IsIdempotent() || slices.Contains(request.NoRetryOnStatusCodes, resp.StatusCode) {
		return false
	}

	retry := netutil.IsTemporaryFailure(resp.StatusCode) || slices.Contains(request.RetryOnStatusCodes, resp.StatusCode)
	if !retry {
		return false
	}

	// If we got a 'Retry-After' in the response this will sleep until we're within the rate limits again
	waitForRetryAfter(resp)

	return true
}

// CleanupResp drains then closes the response body, leaving the connection free for reuse.
func (c *Client) CleanupResp(resp *http.Response) {
	if resp == nil {
		return
	}

	defer resp.Body.Close()

	// A body somebody else already closed is as good as drained
	_, err := io.Copy(io.Discard, resp.Body)
	if err == nil || errors.Is(err, http.ErrBodyReadAfterClose) ||
		errutil.Contains(err, "http: read on closed response body") {
		return
	}

	c.logger.Warnf("(REST) Failed to drain response body due to unexpected error: %s", err)
}
