// Package testutil provides small helpers shared by the unit tests.
package testutil

import (
	"io"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

// MarshalJSON marshals the given value, fatally failing the current test when it can't be.
func MarshalJSON(t *testing.T, data any) []byte {
	encoded, err := jsoniter.Marshal(data)
	require.NoError(t, err)

	return encoded
}

// EncodeJSON streams the given value into the writer as JSON, fatally failing the current test when it can't be.
func EncodeJSON(t *testing.T, writer io.Writer, data any) {
	require.NoError(t, jsoniter.NewEncoder(writer).Encode(data))
}
