// Package maths provides small generic numeric helpers missing from the standard library.
package maths

import "golang.org/x/exp/constraints"

// Min returns the smaller of the two given values.
func Min[N constraints.Ordered](a, b N) N {
	if b < a {
		return b
	}

	return a
}

// Max returns the larger of the two given values.
func Max[N constraints.Ordered](a, b N) N {
	if b > a {
		return b
	}

	return a
}

// Clamp bounds the given value to the inclusive range [lower, upper].
//
// NOTE: Behavior is undefined when 'lower' exceeds 'upper'.
func Clamp[N constraints.Ordered](v, lower, upper N) N {
	switch {
	case v < lower:
		return lower
	case v > upper:
		return upper
	}

	return v
}
