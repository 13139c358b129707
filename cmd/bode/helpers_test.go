package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSamples(t *testing.T) {
	in := "1,0.5,-0.5\n10,0.1,-0.2\n100,0.01,-0.02\n"

	omega, samples, err := readSamples(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 10, 100}, omega)
	assert.Equal(t, []complex128{0.5 - 0.5i, 0.1 - 0.2i, 0.01 - 0.02i}, samples)
}

func TestReadSamplesSkipsHeader(t *testing.T) {
	in := "omega,re,im\n1,2,3\n"

	omega, samples, err := readSamples(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []float64{1}, omega)
	assert.Equal(t, []complex128{2 + 3i}, samples)
}

func TestReadSamplesErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty input", ""},
		{"header only", "omega,re,im\n"},
		{"malformed mid-file row", "1,2,3\n4,x,6\n"},
		{"wrong field count", "1,2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := readSamples(strings.NewReader(tt.in))
			assert.Error(t, err)
		})
	}
}
