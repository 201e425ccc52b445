package lolrest

import "time"

const (
	// DefaultBaseHost is the upstream domain requests are dispatched to when the 'BaseHost' option is omitted; the
	// regional subdomain is always prepended.
	DefaultBaseHost = "api.pvp.net"

	// DefaultRegion is the region assumed when the 'Region' option is omitted.
	DefaultRegion = RegionNA

	// DefaultRequestTimeout bounds a call to 'Execute' end to end, retries and backoff sleeps all spend from this
	// one budget.
	DefaultRequestTimeout = 5 * time.Second

	// DefaultClientTimeout bounds each individual dispatch at the HTTP client level, a retried attempt starts a
	// fresh allowance.
	DefaultClientTimeout = time.Minute
)
