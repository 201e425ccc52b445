package httptools

import (
	"fmt"
	"net/url"
)

// Endpoint is the path portion of a request URL. Endpoints are expected to come from tables owned by the dispatch
// layer rather than being assembled ad hoc at call sites.
//
// NOTE: Query parameters never belong in an endpoint, supply them via the 'QueryParameters' field of 'Request' and
// they'll be encoded onto the URL at dispatch time.
type Endpoint string

// Format substitutes the given arguments into the endpoint's 'fmt.Sprintf' style placeholders, each argument is path
// escaped on the way in.
//
// NOTE: The argument count isn't validated against the placeholder count, that's down to you...
func (e Endpoint) Format(args ...string) Endpoint {
	escaped := make([]any, 0, len(args))
	for _, arg := range args {
		escaped = append(escaped, url.PathEscape(arg))
	}

	return Endpoint(fmt.Sprintf(string(e), escaped...))
}
