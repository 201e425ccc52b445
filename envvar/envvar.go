// Package envvar provides typed access to environment variables, values which fail to parse are treated as unset.
package envvar

import (
	"os"
	"strconv"
	"time"

	"github.com/loltools/loltools/log"
)

// lookup fetches and converts the named variable in one step, the boolean return is false when the variable is unset
// or its value fails conversion.
func lookup[V any](varName string, convert func(string) (V, error)) (V, bool) {
	var zero V

	env, ok := os.LookupEnv(varName)
	if !ok {
		return zero, false
	}

	parsed, err := convert(env)
	if err != nil {
		return zero, false
	}

	return parsed, true
}

// GetInt returns the value of the named variable as an int.
func GetInt(varName string) (int, bool) {
	return lookup(varName, strconv.Atoi)
}

// GetBool returns the value of the named variable as a bool, accepting everything 'strconv.ParseBool' accepts.
func GetBool(varName string) (bool, bool) {
	return lookup(varName, strconv.ParseBool)
}

// GetDuration returns the value of the named variable as a duration, the value must use duration string syntax e.g.
// '30s' or '1m30s'.
func GetDuration(varName string) (time.Duration, bool) {
	return lookup(varName, time.ParseDuration)
}

// GetDurationBC behaves as 'GetDuration' whilst also accepting a plain number of seconds, the form older releases
// accepted for some variables.
func GetDurationBC(varName string) (time.Duration, bool) {
	if duration, ok := GetDuration(varName); ok {
		return duration, true
	}

	seconds, ok := lookup(varName, strconv.Atoi)
	if !ok {
		return 0, false
	}

	log.Warnf("(Environment) Supplying '%s' as a plain number of seconds is deprecated, please use a duration "+
		"string instead", varName)

	return time.Duration(seconds) * time.Second, true
}
