// Package ptrutil provides small helpers for working with pointers to values.
package ptrutil

// ToPtr returns a pointer to a copy of the given value.
//
// Useful for taking the address of constants and intermediate expressions, neither of which the & operator accepts.
func ToPtr[V any](v V) *V {
	return &v
}

// SetPtrIfNil assigns 'fallback' through 'p' when the pointed-to pointer is nil, a nil 'p' is left untouched.
func SetPtrIfNil[V any](p **V, fallback *V) {
	if p != nil && *p == nil {
		*p = fallback
	}
}
