// Package emissions converts raw activity amounts into CO2-equivalent
// values using a region-adjusted emission factor catalog.
//
// The catalog is immutable once constructed and safe to share across
// concurrent callers; computation is a pure function of its inputs.
package emissions

import "strings"

// Region identifies an electrical-grid region for factor selection.
// Unknown regions are rejected at catalog construction, but factors
// without a region-specific override fall back to the global average.
type Region string

// Supported regions.
const (
	RegionUSAverage     Region = "us_average"
	RegionEUAverage     Region = "eu_average"
	RegionUK            Region = "uk"
	RegionCanada        Region = "canada"
	RegionAustralia     Region = "australia"
	RegionGlobalAverage Region = "global_average"
)

// DefaultRegion is used when the calling context supplies no region.
const DefaultRegion = RegionUSAverage

// ParseRegion validates a region string against the closed region set.
// It returns ErrUnknownRegion for anything outside it.
func ParseRegion(s string) (Region, error) {
	switch Region(strings.ToLower(s)) {
	case RegionUSAverage, RegionEUAverage, RegionUK, RegionCanada,
		RegionAustralia, RegionGlobalAverage:
		return Region(strings.ToLower(s)), nil
	default:
		return "", ErrUnknownRegion
	}
}

// Category identifies an activity category with a dedicated
// calculation routine.
type Category string

// Supported categories. CategoryUnknown is the zero value; the engine
// handles it with a flat generic factor rather than an error.
const (
	CategoryUnknown        Category = ""
	CategoryTransportation Category = "transportation"
	CategoryEnergy         Category = "energy"
	CategoryFood           Category = "food"
	CategoryWaste          Category = "waste"
)

// Categories lists the known categories in catalog-declaration order.
func Categories() []Category {
	return []Category{CategoryTransportation, CategoryEnergy, CategoryFood, CategoryWaste}
}

// ParseCategory maps a raw category string onto the closed category
// set. Unrecognized values map to CategoryUnknown, which the engine
// prices with the generic flat factor instead of failing.
func ParseCategory(s string) Category {
	switch Category(strings.ToLower(s)) {
	case CategoryTransportation:
		return CategoryTransportation
	case CategoryEnergy:
		return CategoryEnergy
	case CategoryFood:
		return CategoryFood
	case CategoryWaste:
		return CategoryWaste
	default:
		return CategoryUnknown
	}
}

// Result is the outcome of a single emission computation.
type Result struct {
	// CO2Equivalent is the computed emission in kg CO2e, rounded
	// half-up to two decimal places. Negative values are carbon
	// credits (recycling, composting).
	CO2Equivalent float64 `json:"co2_equivalent"`

	// EmissionFactor is the effective factor co2_equivalent/amount
	// (0 when amount is 0), for display and audit. After unit
	// conversion it is not necessarily the raw catalog factor.
	EmissionFactor float64 `json:"emission_factor"`

	// Explanation is a human-readable account of the calculation,
	// including any fallback that was applied.
	Explanation string `json:"explanation"`

	// Region the catalog was built for.
	Region Region `json:"region"`
}
