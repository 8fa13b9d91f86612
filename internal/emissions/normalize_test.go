package emissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDistance(t *testing.T) {
	tests := []struct {
		name       string
		amount     float64
		unit       string
		wantAmount float64
		wantUnit   string
	}{
		{"miles", 10, "miles", 16.0934, "km"},
		{"mi shorthand", 10, "mi", 16.0934, "km"},
		{"uppercase", 10, "MILES", 16.0934, "km"},
		{"km passes through", 10, "km", 10, "km"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, unit := normalizeDistance(tt.amount, tt.unit)
			assert.InDelta(t, tt.wantAmount, amount, 1e-9)
			assert.Equal(t, tt.wantUnit, unit)
		})
	}
}

func TestNormalizeMass(t *testing.T) {
	amount, unit := normalizeMass(10, "lbs")
	assert.InDelta(t, 4.53592, amount, 1e-9)
	assert.Equal(t, "kg", unit)

	amount, unit = normalizeMass(10, "kg")
	assert.InDelta(t, 10, amount, 1e-9)
	assert.Equal(t, "kg", unit)
}

func TestNormalizeFoodMass(t *testing.T) {
	tests := []struct {
		name       string
		activity   string
		amount     float64
		unit       string
		wantAmount float64
	}{
		{"beef serving is 113g", "beef", 1, "servings", 0.113},
		{"milk serving is 250g", "milk", 2, "servings", 0.5},
		{"cheese serving is 30g", "cheese", 1, "serving", 0.03},
		{"unlisted food defaults to 100g", "nuts", 3, "portions", 0.3},
		{"pounds", "beef", 2, "lbs", 0.907184},
		{"kg passes through", "beef", 2, "kg", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, _ := normalizeFoodMass(tt.activity, tt.amount, tt.unit)
			assert.InDelta(t, tt.wantAmount, amount, 1e-9)
		})
	}
}

func TestUnitPredicates(t *testing.T) {
	assert.True(t, isKWhUnit("kWh"))
	assert.True(t, isKWhUnit("KWH"))
	assert.False(t, isKWhUnit("therms"))

	assert.True(t, isServingsUnit("portion"))
	assert.False(t, isServingsUnit("kg"))
}
