package netutil

import "strings"

// TrimSchema returns the given host with any leading schema removed, hosts without a schema are returned unmodified.
func TrimSchema(host string) string {
	if _, trimmed, found := strings.Cut(host, "://"); found {
		return trimmed
	}

	return host
}
