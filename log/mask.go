package log

import (
	"net/url"
)

// MaskQueryValues returns a copy of the given URI with the values of the named query parameters replaced by a fixed
// number of *; used to keep credentials out of log output.
//
// NOTE: Query parameters are re-encoded in sorted order, the returned URI is for display purposes only.
func MaskQueryValues(uri string, keys ...string) string {
	parsed, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	query := parsed.Query()

	for _, key := range keys {
		if query.Has(key) {
			query.Set(key, "*****") // Mask with fix length to avoid revealing any details about the string.
		}
	}

	parsed.RawQuery = query.Encode()

	return parsed.String()
}
