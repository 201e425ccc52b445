package httptools

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestIsIdempotent(t *testing.T) {
	type test struct {
		name     string
		request  *Request
		expected bool
	}

	tests := []*test{
		{
			name:     "GET",
			request:  &Request{Method: MethodGet},
			expected: true,
		},
		{
			name:    "POST",
			request: &Request{Method: http.MethodPost},
		},
		{
			name:     "POSTMarkedIdempotent",
			request:  &Request{Method: http.MethodPost, Idempotent: true},
			expected: true,
		},
		{
			name:    "ZeroValueMethod",
			request: &Request{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, test.request.IsIdempotent())
		})
	}
}
