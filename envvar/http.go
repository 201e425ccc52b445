package envvar

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/loltools/loltools/netutil"
	"github.com/loltools/loltools/ptrutil"
)

// GetHTTPTimeouts reads the HTTP client/transport timeouts from the named environment variable, the given defaults
// fill in any timeout the variable doesn't mention.
//
// NOTE: Timeouts absent from both the environment and the defaults remain nil, 'netutil.NewHTTPTransport' applies the
// final fallbacks.
func GetHTTPTimeouts(envVar string, defaults netutil.HTTPTimeouts) (netutil.HTTPTimeouts, error) {
	var timeouts netutil.HTTPTimeouts

	if env, ok := os.LookupEnv(envVar); ok {
		if err := json.Unmarshal([]byte(env), &timeouts); err != nil {
			return netutil.HTTPTimeouts{}, fmt.Errorf("failed to get timeouts from environment: %w", err)
		}
	}

	ptrutil.SetPtrIfNil(&timeouts.Dialer, defaults.Dialer)
	ptrutil.SetPtrIfNil(&timeouts.KeepAlive, defaults.KeepAlive)
	ptrutil.SetPtrIfNil(&timeouts.TransportIdleConn, defaults.TransportIdleConn)
	ptrutil.SetPtrIfNil(&timeouts.TransportContinue, defaults.TransportContinue)
	ptrutil.SetPtrIfNil(&timeouts.TransportResponseHeader, defaults.TransportResponseHeader)
	ptrutil.SetPtrIfNil(&timeouts.TransportTLSHandshake, defaults.TransportTLSHandshake)

	return timeouts, nil
}
