package netutil

import (
	"crypto/tls"
	"net"
	"net/http"

	"github.com/loltools/loltools/ptrutil"
)

// NewHTTPTransport returns a HTTP transport using the given TLS config and timeouts, omitted timeouts fall back to
// the package defaults.
func NewHTTPTransport(config *tls.Config, timeouts HTTPTimeouts) *http.Transport {
	ptrutil.SetPtrIfNil(&timeouts.Dialer, ptrutil.ToPtr(defaultDialerTimeout))
	ptrutil.SetPtrIfNil(&timeouts.KeepAlive, ptrutil.ToPtr(defaultDialerKeepAlive))
	ptrutil.SetPtrIfNil(&timeouts.TransportIdleConn, ptrutil.ToPtr(defaultIdleConnTimeout))
	ptrutil.SetPtrIfNil(&timeouts.TransportContinue, ptrutil.ToPtr(defaultContinueTimeout))
	ptrutil.SetPtrIfNil(&timeouts.TransportResponseHeader, ptrutil.ToPtr(defaultResponseHeaderTimeout))
	ptrutil.SetPtrIfNil(&timeouts.TransportTLSHandshake, ptrutil.ToPtr(defaultTLSHandshakeTimeout))

	dialer := net.Dialer{Timeout: *timeouts.Dialer, KeepAlive: *timeouts.KeepAlive}

	return &http.Transport{
		DialContext:           dialer.DialContext,
		ExpectContinueTimeout: *timeouts.TransportContinue,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       *timeouts.TransportIdleConn,
		MaxIdleConns:          100,
		Proxy:                 http.ProxyFromEnvironment,
		ResponseHeaderTimeout: *timeouts.TransportResponseHeader,
		TLSClientConfig:       config,
		TLSHandshakeTimeout:   *timeouts.TransportTLSHandshake,
	}
}
