package netutil

import "time"

// Defaults applied by 'NewHTTPTransport' for any timeout not supplied by the user, the transport values mirror the
// fields of 'http.Transport'.
const (
	defaultDialerTimeout   = 30 * time.Second
	defaultDialerKeepAlive = 30 * time.Second

	defaultIdleConnTimeout       = 90 * time.Second
	defaultContinueTimeout       = 5 * time.Second
	defaultResponseHeaderTimeout = 10 * time.Second
	defaultTLSHandshakeTimeout   = 10 * time.Second
)
