package lolrest

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"github.com/loltools/loltools/envvar"
	"github.com/loltools/loltools/httptools"
	"github.com/loltools/loltools/keyprov"
	"github.com/loltools/loltools/log"
	"github.com/loltools/loltools/maths"
	"github.com/loltools/loltools/netutil"

	"golang.org/x/time/rate"
)

// ClientOptions encapsulates the options for creating a new REST client.
type ClientOptions struct {
	// Region selects the shard requests are routed to, defaulting to 'DefaultRegion' when omitted.
	Region Region

	// Provider supplies the API key placed in the query string of each request; must be non-nil.
	Provider keyprov.Provider

	// BaseHost overrides the upstream domain. A value carrying a schema is used verbatim without the regional
	// subdomain being prepended.
	BaseHost string

	TLSConfig *tls.Config

	// RequestRetries is the number of times requests are dispatched before giving up; zero or less means each request
	// is dispatched exactly once.
	RequestRetries int

	// Limiter, when non-nil, is waited on before each dispatch. Shared between clients to enforce a key-wide budget.
	Limiter *rate.Limiter

	// ReqResLogLevel is the level at which to log the dispatching and receiving of requests/responses.
	//
	// NOTE: Setting 'LOL_REST_CLIENT_REQ_RES_LOGGING' in the environment forces the info level, handy when a
	// deployed application needs request logging without a rebuild.
	ReqResLogLevel log.Level

	// Logger receives everything the client logs; when nil, output goes through the package level logger
	// installed with 'log.SetLogger'.
	Logger log.Logger
}

// Client is a REST client used to construct and dispatch requests to the League of Legends API.
type Client struct {
	transport *httptools.Client

	region   Region
	baseHost string
	host     string

	keyProvider keyprov.Provider

	requestRetries int
	requestTimeout time.Duration
}

// Response is the read response to a dispatched request.
type Response = httptools.Response

// NewClient creates a new REST client routing requests to the given region.
//
// All validation takes place here; a returned client constructs requests without error for any known endpoint.
func NewClient(options ClientOptions) (*Client, error) {
	if options.Provider == nil {
		return nil, ErrNoKeyProvider
	}

	region := options.Region
	if region == "" {
		region = DefaultRegion
	}

	if !region.Valid() {
		return nil, &UnknownRegionError{region: region}
	}

	clientTimeout, ok := envvar.GetDurationBC("LOL_REST_CLIENT_TIMEOUT_SECS")
	if !ok {
		clientTimeout = DefaultClientTimeout
	} else {
		log.Infof("(REST) Set HTTP client timeout to: %s", clientTimeout)
	}

	requestTimeout, ok := envvar.GetDuration("LOL_REST_CLIENT_REQUEST_TIMEOUT")
	if !ok {
		requestTimeout = DefaultRequestTimeout
	} else {
		log.Infof("(REST) Set request timeout to: %s", requestTimeout)
	}

	requestRetries, ok := envvar.GetInt("LOL_REST_CLIENT_NUM_RETRIES")
	if !ok || requestRetries < 0 {
		requestRetries = options.RequestRetries
	} else {
		log.Infof("(REST) Set number of retries for requests to: %d", requestRetries)
	}

	reqResLogLevel := options.ReqResLogLevel
	if enabled, ok := envvar.GetBool("LOL_REST_CLIENT_REQ_RES_LOGGING"); ok && enabled {
		reqResLogLevel = log.LevelInfo
		log.Infof("(REST) Enabled request/response logging at the info level")
	}

	timeouts, err := envvar.GetHTTPTimeouts("LOL_REST_HTTP_TIMEOUTS", netutil.HTTPTimeouts{})
	if err != nil {
		return nil, fmt.Errorf("failed to get HTTP timeouts: %w", err)
	}

	baseHost := options.BaseHost
	if baseHost == "" {
		baseHost = DefaultBaseHost
	}

	host := fmt.Sprintf("https://%s.%s", region, baseHost)
	if strings.Contains(baseHost, "://") {
		host = baseHost
	}

	client := &Client{
		region:         region,
		baseHost:       baseHost,
		host:           host,
		keyProvider:    options.Provider,
		requestRetries: requestRetries,
		requestTimeout: requestTimeout,
	}

	client.transport = httptools.NewClient(
		// NOTE: The HTTP client timeout should be the larger of the two configurable timeouts to avoid one cutting
		// the other short.
		httptools.NewHTTPClient(maths.Max(requestTimeout, clientTimeout), netutil.NewHTTPTransport(options.TLSConfig, timeouts)),
		options.Provider,
		options.Logger,
		httptools.ClientOptions{
			RequestRetries: requestRetries,
			ReqResLogLevel: reqResLogLevel,
			Limiter:        options.Limiter,
		},
	)

	return client, nil
}

// Execute constructs and dispatches a request to the given endpoint, returning the fully read response.
//
// Requests are dispatched exactly once unless retries were enabled at client creation, in which case temporary
// failures are retried with a growing backoff between attempts.
func (c *Client) Execute(ctx context.Context, id EndpointID, params Params) (*Response, error) {
	request, err := c.NewRequest(id, params)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	if c.requestRetries > 0 {
		return c.transport.ExecuteWithRetries(ctx, request)
	}

	return c.transport.Execute(ctx, request)
}

// Region returns the region requests are routed to.
func (c *Client) Region() Region {
	return c.region
}

// BaseHost returns the upstream domain requests are dispatched to.
func (c *Client) BaseHost() string {
	return c.baseHost
}

// RequestTimeout returns the end to end budget applied to each executed request.
func (c *Client) RequestTimeout() time.Duration {
	return c.requestTimeout
}

// RequestRetries returns the number of times requests will be dispatched before giving up.
func (c *Client) RequestRetries() int {
	return c.requestRetries
}
