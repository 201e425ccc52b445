package lolrest

import (
	"net/url"
	"strconv"
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

// Reserved parameter names which are consumed as path segments by the standard/static-data strategies; once consumed
// they must never survive into the query string.
const (
	paramBy   = "by"
	paramID   = "id"
	paramType = "type"
)

// Params is the mapping of named parameters supplied with a single call; ordering is irrelevant. Values must be
// scalar, numbers are coerced to their decimal string form.
//
// NOTE: The router never modifies the mapping, the same value may be reused across calls.
type Params map[string]any

// segment returns the path segment form of the named parameter, with a boolean indicating whether it was present at
// all.
func (p Params) segment(name string) (string, bool, error) {
	value, ok := p[name]
	if !ok {
		return "", false, nil
	}

	coerced, err := coerceParam(name, value)
	if err != nil {
		return "", false, err
	}

	// An empty segment would silently collapse into the surrounding path, reject it before it produces a URI which
	// routes somewhere unintended
	if coerced == "" {
		return "", false, &InvalidParameterValueError{name: name, value: value, reason: "path segments must be non-empty"}
	}

	return coerced, true, nil
}

// values returns the query string form of the parameters, skipping those consumed as path segments.
func (p Params) values(consumed ...string) (url.Values, error) {
	values := make(url.Values, len(p))

	for name, value := range p {
		if slices.Contains(consumed, name) {
			continue
		}

		coerced, err := coerceParam(name, value)
		if err != nil {
			return nil, err
		}

		values.Set(name, coerced)
	}

	return values, nil
}

// coerceParam returns the URI component form of the given parameter value.
func coerceParam(name string, value any) (string, error) {
	var coerced string

	switch v := value.(type) {
	case string:
		coerced = v
	case bool:
		coerced = strconv.FormatBool(v)
	case int:
		coerced = strconv.FormatInt(int64(v), 10)
	case int8:
		coerced = strconv.FormatInt(int64(v), 10)
	case int16:
		coerced = strconv.FormatInt(int64(v), 10)
	case int32:
		coerced = strconv.FormatInt(int64(v), 10)
	case int64:
		coerced = strconv.FormatInt(v, 10)
	case uint:
		coerced = strconv.FormatUint(uint64(v), 10)
	case uint8:
		coerced = strconv.FormatUint(uint64(v), 10)
	case uint16:
		coerced = strconv.FormatUint(uint64(v), 10)
	case uint32:
		coerced = strconv.FormatUint(uint64(v), 10)
	case uint64:
		coerced = strconv.FormatUint(v, 10)
	case float32:
		coerced = strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		coerced = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return "", &InvalidParameterValueError{name: name, value: value, reason: "values must be scalar"}
	}

	if !utf8.ValidString(coerced) {
		return "", &InvalidParameterValueError{name: name, value: value, reason: "value is not valid UTF-8"}
	}

	return coerced, nil
}
