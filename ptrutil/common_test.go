package ptrutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToPtr(t *testing.T) {
	t.Run("Value", func(t *testing.T) {
		actual := ToPtr(42)

		require.NotNil(t, actual)
		require.Equal(t, 42, *actual)
	})

	t.Run("Const", func(t *testing.T) {
		const answer = "forty two"

		require.Equal(t, answer, *ToPtr(answer))
	})

	t.Run("CopiesValue", func(t *testing.T) {
		value := 42

		require.NotSame(t, &value, ToPtr(value))
	})
}

func TestSetPtrIfNil(t *testing.T) {
	fallback := ToPtr(42)

	t.Run("NilTarget", func(t *testing.T) {
		require.NotPanics(t, func() { SetPtrIfNil(nil, fallback) })
	})

	t.Run("NilPointerAssigned", func(t *testing.T) {
		var target *int

		SetPtrIfNil(&target, fallback)

		require.Same(t, fallback, target)
	})

	t.Run("PopulatedPointerUntouched", func(t *testing.T) {
		existing := ToPtr(7)
		target := existing

		SetPtrIfNil(&target, fallback)

		require.Same(t, existing, target)
	})
}
