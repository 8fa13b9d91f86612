// Package equivalents translates kg CO2e values into relatable
// real-world comparisons (miles driven, smartphones charged, trees
// planted) using EPA-published conversion factors.
package equivalents

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// EPA greenhouse-gas equivalency factors (2024 edition), kg CO2e per
// unit of the compared activity. The equivalency is value/factor.
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
const (
	// MilesDrivenFactor is kg CO2e per mile for an average passenger
	// vehicle.
	MilesDrivenFactor = 0.192

	// SmartphoneChargeFactor is kg CO2e per full smartphone charge.
	SmartphoneChargeFactor = 0.00822

	// TreeSeedlingFactor is kg CO2e absorbed by one tree seedling grown
	// for 10 years.
	TreeSeedlingFactor = 60.0

	// HomeDayFactor is kg CO2e per day of average US home electricity.
	HomeDayFactor = 18.3
)

// minThresholdKg is the smallest magnitude worth comparing; below it
// the equivalencies are meaninglessly small.
const minThresholdKg = 1.0

// largeNumberThreshold switches formatting to abbreviated notation.
const (
	largeNumberThreshold = 1_000_000
	billionThreshold     = 1_000_000_000
)

//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// Item is one calculated comparison.
type Item struct {
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted_value"`
	Label     string  `json:"label"`
}

// Output holds the comparisons for one CO2e value.
type Output struct {
	KgCO2e float64 `json:"kg_co2e"`
	Items  []Item  `json:"items"`

	// Display is the prose form for terminal output, e.g.
	// "Equivalent to driving ~781 miles or charging ~18,248 smartphones".
	Display string `json:"display"`

	// Compact is the abbreviated form for single-line output.
	Compact string `json:"compact"`

	// Empty is true when the value was too small to compare.
	Empty bool `json:"empty"`
}

// ForKg computes the comparisons for a kg CO2e value. Negative values
// (net savings from recycling or composting) are compared by magnitude
// with "saving" wording. Magnitudes under 1 kg yield an empty output.
func ForKg(kg float64) Output {
	magnitude := math.Abs(kg)
	if magnitude < minThresholdKg || math.IsNaN(magnitude) || math.IsInf(magnitude, 0) {
		return Output{KgCO2e: kg, Empty: true}
	}

	miles := magnitude / MilesDrivenFactor
	phones := magnitude / SmartphoneChargeFactor
	trees := magnitude / TreeSeedlingFactor

	items := []Item{
		{Value: miles, Formatted: formatValue(miles), Label: "miles driven"},
		{Value: phones, Formatted: formatValue(phones), Label: "smartphones charged"},
		{Value: trees, Formatted: formatValue(trees), Label: "tree seedlings grown for 10 years"},
	}

	verb := "driving"
	if kg < 0 {
		verb = "saving the emissions of driving"
	}
	display := fmt.Sprintf("Equivalent to %s ~%s miles or charging ~%s smartphones",
		verb, items[0].Formatted, items[1].Formatted)
	compact := fmt.Sprintf("(~%s mi, %s phones)", items[0].Formatted, items[1].Formatted)

	return Output{
		KgCO2e:  kg,
		Items:   items,
		Display: display,
		Compact: compact,
	}
}

// formatValue renders an equivalency count: comma-separated integers up
// to a million, then "~X.X million"/"~X.X billion".
func formatValue(v float64) string {
	switch {
	case v >= billionThreshold:
		return fmt.Sprintf("~%.1f billion", v/billionThreshold)
	case v >= largeNumberThreshold:
		return fmt.Sprintf("~%.1f million", v/largeNumberThreshold)
	default:
		return printer.Sprintf("%d", int64(math.Round(v)))
	}
}
