package lolrest

import (
	"net/http"
	"net/url"

	"github.com/loltools/loltools/httptools"
)

// Path templates for the three route conventions the upstream API grew over its lifetime, filled in via
// 'Endpoint.Format'.
const (
	endpointStandardRoot   httptools.Endpoint = "/api/lol/%s/v%s/%s"
	endpointStaticDataRoot httptools.Endpoint = "/api/lol/static-data/%s/v%s"
	endpointSpectatorRoot  httptools.Endpoint = "/observer-mode/rest/consumer/getSpectatorGameInfo/%s"
)

// builderFunc constructs the path for an endpoint, returning the names of the reserved parameters it consumed as path
// segments.
type builderFunc func(c *Client, id EndpointID, spec endpointSpec, params Params) (httptools.Endpoint, []string, error)

// builders maps each path strategy to its handler; a new upstream convention is supported by adding a tag/builder
// pair here, never by editing the existing rules.
var builders = map[pathStrategy]builderFunc{
	pathStandard:   (*Client).buildStandard,
	pathStaticData: (*Client).buildStaticData,
	pathLiveGame:   (*Client).buildLiveGame,
}

// NewRequest translates a logical API call into a dispatchable REST request: the path is constructed per the
// endpoint's strategy, the parameters not consumed as path segments become the query string, and the API key is
// injected exactly once.
//
// The request is built fresh on every call from immutable tables, never cached and never mutated once returned; any
// number of requests may be built concurrently.
func (c *Client) NewRequest(id EndpointID, params Params) (*httptools.Request, error) {
	spec, ok := endpoints[id]
	if !ok {
		return nil, &UnknownEndpointError{id: id}
	}

	endpoint, consumed, err := builders[spec.strategy](c, id, spec, params)
	if err != nil {
		return nil, err
	}

	values, err := params.values(consumed...)
	if err != nil {
		return nil, err
	}

	// The credential always travels as a query parameter; 'Set' replaces any caller supplied value so the produced
	// URI carries it exactly once
	values.Set("api_key", c.keyProvider.GetKey(c.host))

	return &httptools.Request{
		Host:               c.host,
		Method:             httptools.MethodGet,
		Endpoint:           endpoint,
		QueryParameters:    values,
		ExpectedStatusCode: http.StatusOK,
	}, nil
}

// buildStandard constructs '/api/lol/<region>/v<version>/<name>' followed by the positional reserved segments.
func (c *Client) buildStandard(id EndpointID, spec endpointSpec, params Params) (httptools.Endpoint, []string, error) {
	endpoint := endpointStandardRoot.Format(string(c.region), spec.version, id.pathName())

	return appendReservedSegments(endpoint, params, paramBy, paramID, paramType)
}

// buildStaticData constructs '/api/lol/static-data/<region>/v<version>/<type>'; the type value substitutes for the
// endpoint name itself, the remaining reserved segments then continue as standard. A request consuming no segments at
// all addresses the collection root, trailing slash included.
func (c *Client) buildStaticData(_ EndpointID, spec endpointSpec, params Params) (httptools.Endpoint, []string, error) {
	endpoint := endpointStaticDataRoot.Format(string(c.region), spec.version)

	name, ok, err := params.segment(paramType)
	if err != nil {
		return "", nil, err
	}

	if ok {
		endpoint += httptools.Endpoint("/" + url.PathEscape(name))
	}

	endpoint, consumed, err := appendReservedSegments(endpoint, params, paramBy, paramID)
	if err != nil {
		return "", nil, err
	}

	// The bare collection root keeps its trailing slash, the upstream serves the complete data set from that path
	if !ok && len(consumed) == 0 {
		endpoint += "/"
	}

	if ok {
		consumed = append(consumed, paramType)
	}

	return endpoint, consumed, nil
}

// buildLiveGame constructs '/observer-mode/rest/consumer/getSpectatorGameInfo/<platformId>' with the platform from
// the region registry. No version segment is ever emitted and no reserved parameter handling takes place; the
// upstream ignores unknown query parameters so any supplied are passed through untouched.
func (c *Client) buildLiveGame(_ EndpointID, _ endpointSpec, _ Params) (httptools.Endpoint, []string, error) {
	platform, err := ResolvePlatform(c.region)
	if err != nil {
		return "", nil, err
	}

	return endpointSpectatorRoot.Format(platform.ID), nil, nil
}

// appendReservedSegments appends the given reserved parameters as path segments in the order supplied; the upstream
// routes are positional so the order is part of the contract. The 'by' parameter names a path component ('/by-name')
// where the others contribute bare values.
func appendReservedSegments(
	endpoint httptools.Endpoint,
	params Params,
	names ...string,
) (httptools.Endpoint, []string, error) {
	consumed := make([]string, 0, len(names))

	for _, name := range names {
		value, ok, err := params.segment(name)
		if err != nil {
			return "", nil, err
		}

		if !ok {
			continue
		}

		prefix := "/"
		if name == paramBy {
			prefix = "/by-"
		}

		endpoint += httptools.Endpoint(prefix + url.PathEscape(value))
		consumed = append(consumed, name)
	}

	return endpoint, consumed, nil
}
