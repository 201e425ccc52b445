package retry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wrapped := NewContext(ctx)
	require.Equal(t, 1, wrapped.Attempt())

	cancel()
	require.ErrorIs(t, wrapped.Err(), context.Canceled)
}
