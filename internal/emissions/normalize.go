package emissions

import "strings"

// Unit conversion constants.
const (
	// MilesToKm converts statute miles to kilometers.
	MilesToKm = 1.60934

	// PoundsToKg converts pounds to kilograms.
	PoundsToKg = 0.453592
)

// defaultServingKg is the assumed weight of one serving for foods not
// in the serving-weight table.
const defaultServingKg = 0.1

// servingWeightsKg approximates one serving in kilograms per food
// activity. Known approximation carried over from the upstream factor
// data; no firmer derivation exists.
var servingWeightsKg = map[string]float64{
	"beef":        0.113, // 4 oz meat serving
	"lamb":        0.113,
	"pork":        0.113,
	"chicken":     0.113,
	"turkey":      0.113,
	"fish_farmed": 0.113,
	"fish_wild":   0.113,
	"milk":        0.25,
	"cheese":      0.03,
	"eggs":        0.05,
	"rice":        0.08,
	"pasta":       0.08,
	"bread":       0.03,
}

// isMilesUnit reports whether the unit denotes statute miles.
func isMilesUnit(unit string) bool {
	switch strings.ToLower(unit) {
	case "miles", "mile", "mi":
		return true
	default:
		return false
	}
}

// isPoundsUnit reports whether the unit denotes pounds.
func isPoundsUnit(unit string) bool {
	switch strings.ToLower(unit) {
	case "lbs", "lb", "pounds", "pound":
		return true
	default:
		return false
	}
}

// isServingsUnit reports whether the unit denotes servings/portions.
func isServingsUnit(unit string) bool {
	switch strings.ToLower(unit) {
	case "serving", "servings", "portion", "portions":
		return true
	default:
		return false
	}
}

// isKWhUnit reports whether the unit denotes kilowatt-hours.
func isKWhUnit(unit string) bool {
	switch strings.ToLower(unit) {
	case "kwh", "kilowatt_hours", "kw_hours":
		return true
	default:
		return false
	}
}

// normalizeDistance converts the amount to kilometers when the unit is
// miles; other units pass through unchanged.
func normalizeDistance(amount float64, unit string) (float64, string) {
	if isMilesUnit(unit) {
		return amount * MilesToKm, "km"
	}
	return amount, unit
}

// normalizeMass converts the amount to kilograms when the unit is
// pounds; other units pass through unchanged.
func normalizeMass(amount float64, unit string) (float64, string) {
	if isPoundsUnit(unit) {
		return amount * PoundsToKg, "kg"
	}
	return amount, unit
}

// normalizeFoodMass converts pounds or servings to kilograms for a
// food activity. Serving weights use the per-activity table with the
// 100 g default.
func normalizeFoodMass(activity string, amount float64, unit string) (float64, string) {
	if isPoundsUnit(unit) {
		return amount * PoundsToKg, "kg"
	}
	if isServingsUnit(unit) {
		weight, ok := servingWeightsKg[activity]
		if !ok {
			weight = defaultServingKg
		}
		return amount * weight, "kg"
	}
	return amount, unit
}
