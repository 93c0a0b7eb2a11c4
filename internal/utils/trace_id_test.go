package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceIDs_New(t *testing.T) {
	ids := NewTraceIDs()

	first := ids.New()
	second := ids.New()

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, first, second)
}

func TestTraceIDs_FromHeader(t *testing.T) {
	ids := NewTraceIDs()

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "plain token", header: "req-42", keep: true},
		{name: "uuid", header: "0190b2a4-7c1e-7d3a-9f00-1a2b3c4d5e6f", keep: true},
		{name: "dotted with colon", header: "edge.1:abc_def", keep: true},
		{name: "empty", header: "", keep: false},
		{name: "newline", header: "bad\nid", keep: false},
		{name: "space", header: "two words", keep: false},
		{name: "too long", header: strings.Repeat("a", maxTraceIDLength+1), keep: false},
		{name: "longest kept", header: strings.Repeat("a", maxTraceIDLength), keep: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids.FromHeader(tt.header)

			if tt.keep {
				assert.Equal(t, tt.header, got)
				return
			}
			parsed, err := uuid.Parse(got)
			require.NoError(t, err)
			assert.Equal(t, uuid.Version(7), parsed.Version())
		})
	}
}
