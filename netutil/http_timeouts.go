package netutil

import (
	"encoding/json"
	"fmt"
	"time"
)

// HTTPTimeouts carries the tunable timeouts for a HTTP client/transport in a form which can be supplied through the
// environment.
//
// Fields are pointers so that an omitted timeout can be told apart from an explicit zero, omitted timeouts are
// populated with sane defaults by 'NewHTTPTransport'.
type HTTPTimeouts struct {
	Dialer                  *time.Duration
	KeepAlive               *time.Duration
	TransportIdleConn       *time.Duration
	TransportContinue       *time.Duration
	TransportResponseHeader *time.Duration
	TransportTLSHandshake   *time.Duration
}

// UnmarshalJSON decodes a flat object of duration strings, for example '{"dialer":"30s"}'. Unknown keys and empty
// values are ignored, leaving the matching field unset.
func (ct *HTTPTimeouts) UnmarshalJSON(data []byte) error {
	var fields map[string]string

	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	targets := map[string]**time.Duration{
		"dialer":                    &ct.Dialer,
		"keep_alive":                &ct.KeepAlive,
		"transport_idle_conn":       &ct.TransportIdleConn,
		"transport_continue":        &ct.TransportContinue,
		"transport_response_header": &ct.TransportResponseHeader,
		"transport_tls_handshake":   &ct.TransportTLSHandshake,
	}

	for key, target := range targets {
		value, ok := fields[key]
		if !ok || value == "" {
			continue
		}

		duration, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration for '%s': %w", key, err)
		}

		*target = &duration
	}

	return nil
}
