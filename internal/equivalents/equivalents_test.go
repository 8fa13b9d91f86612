package equivalents

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForKg(t *testing.T) {
	t.Run("typical monthly footprint", func(t *testing.T) {
		got := ForKg(150)

		require.False(t, got.Empty)
		require.Len(t, got.Items, 3)
		assert.InDelta(t, 781.25, got.Items[0].Value, 0.01)
		assert.Equal(t, "781", got.Items[0].Formatted)
		assert.InDelta(t, 18248, got.Items[1].Value, 0.5)
		assert.Equal(t, "18,248", got.Items[1].Formatted)
		assert.Equal(t, "Equivalent to driving ~781 miles or charging ~18,248 smartphones", got.Display)
		assert.Equal(t, "(~781 mi, 18,248 phones)", got.Compact)
	})

	t.Run("below threshold is empty", func(t *testing.T) {
		got := ForKg(0.5)
		assert.True(t, got.Empty)
		assert.Empty(t, got.Items)
		assert.InDelta(t, 0.5, got.KgCO2e, 1e-9)
	})

	t.Run("negative uses savings wording", func(t *testing.T) {
		got := ForKg(-50)
		require.False(t, got.Empty)
		assert.Contains(t, got.Display, "saving the emissions of driving")
		assert.InDelta(t, 260.42, got.Items[0].Value, 0.01)
	})

	t.Run("non-finite is empty", func(t *testing.T) {
		assert.True(t, ForKg(math.NaN()).Empty)
		assert.True(t, ForKg(math.Inf(1)).Empty)
	})
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{781.25, "781"},
		{18248.175, "18,248"},
		{1_500_000, "~1.5 million"},
		{2_300_000_000, "~2.3 billion"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatValue(tt.in), "input %v", tt.in)
	}
}
