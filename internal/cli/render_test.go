package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatKg(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{19.2, "19.20"},
		{-8.94, "-8.94"},
		{1234.5, "1,234.50"},
		{1234567.891, "1,234,567.89"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatKg(tt.in), "input %v", tt.in)
	}
}

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		flag    string
		want    string
		wantErr bool
	}{
		{"json", "json", false},
		{"table", "table", false},
		{"JSON", "json", false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := outputFormat(tt.flag)
		if tt.wantErr {
			require.Error(t, err, tt.flag)
			continue
		}
		require.NoError(t, err, tt.flag)
		assert.Equal(t, tt.want, got, tt.flag)
	}
}
