package lolrest

import (
	"crypto/tls"
	"crypto/x509"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/loltools/loltools/httptools"
	"github.com/loltools/loltools/netutil"
)

// TestServiceOptions encapsulates the options which can be passed when creating a new test service. These options
// configure the behavior/setup of the service.
type TestServiceOptions struct {
	// Handler functions which are run to handle a REST request dispatched to the service
	Handlers httptools.TestHandlers

	// A non-nil TLS config indicates that the service should use TLS
	TLSConfig *tls.Config
}

// TestService is a mock API host used for unit testing functionality which relies on the REST client.
//
// NOTE: Unlike the live service the mock is region agnostic, it's wired in by passing 'URL' as the base host which
// bypasses the regional subdomain entirely.
type TestService struct {
	t       *testing.T
	server  *httptest.Server
	options TestServiceOptions
}

// NewTestService creates a new test service using the provided options.
func NewTestService(t *testing.T, options TestServiceOptions) *TestService {
	if options.Handlers == nil {
		options.Handlers = make(httptools.TestHandlers)
	}

	service := &TestService{
		t:       t,
		options: options,
	}

	if options.TLSConfig != nil {
		service.server = httptest.NewUnstartedServer(http.HandlerFunc(service.Handler))
		service.server.TLS = options.TLSConfig
		service.server.StartTLS()
	} else {
		service.server = httptest.NewServer(http.HandlerFunc(service.Handler))
	}

	return service
}

// URL returns the fully qualified URL which can be used to dispatch requests to the service.
func (t *TestService) URL() string {
	return t.server.URL
}

// Address returns the address of the service, for the time being should always be "127.0.0.1".
func (t *TestService) Address() string {
	trimmed := netutil.TrimSchema(t.server.URL)
	return trimmed[:strings.Index(trimmed, ":")]
}

// Certificate returns the certificate which can be used to authenticate the service.
//
// NOTE: This will be <nil> if the service is not running with TLS enabled.
func (t *TestService) Certificate() *x509.Certificate {
	return t.server.Certificate()
}

// Handler is the base handler function for requests, endpoint handlers are added using the 'Handlers' attribute of
// the service options.
//
// NOTE: Requests arriving at an endpoint without a handler receive a 404, exactly as the live service responds to
// paths it doesn't serve.
func (t *TestService) Handler(writer http.ResponseWriter, request *http.Request) {
	t.options.Handlers.Handle(writer, request)
}

// Close gracefully stops the running service.
func (t *TestService) Close() {
	t.server.Close()
}
