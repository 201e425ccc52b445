// Package keyprov exposes an interface allowing the REST client to acquire the API key used to authenticate requests.
package keyprov

// Provider is an interface which may be implemented and provided to the REST client, the client will use the provider
// to acquire the API key supplied with each dispatched request.
type Provider interface {
	// GetKey returns the API key which should be supplied with a request to the given host.
	GetKey(host string) string

	// GetUserAgent returns the 'User-Agent' which should be used for all requests.
	GetUserAgent() string
}
