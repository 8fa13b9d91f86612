package emissions

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Fallback activities substituted for unknown activity keys. The
// substitution is logged, never raised: imperfect data should still
// produce a usable number.
const (
	fallbackTransportation = "car_gasoline_medium"
	fallbackFood           = "chicken" // moderate-impact default
	fallbackWaste          = "landfill_mixed"
)

// genericFactor prices unknown categories and unknown energy keys.
const genericFactor = 0.5

// Fixed fallback results returned when a category routine hits an
// unexpected internal error.
const (
	errFallbackTransportation = 5.0
	errFallbackEnergy         = 2.0
	errFallbackFood           = 1.0
	errFallbackWaste          = 0.5
	errFallbackGeneric        = 1.0
)

// Engine computes CO2-equivalent values against one region's catalog.
// It is stateless apart from the immutable catalog and safe for
// concurrent use.
type Engine struct {
	catalog *Catalog
}

// NewEngine creates a computation engine over the given catalog.
func NewEngine(catalog *Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// NewEngineForRegion builds the catalog for region and wraps it in an
// engine. It fails only for an unknown region or a broken factor table.
func NewEngineForRegion(region Region) (*Engine, error) {
	catalog, err := NewCatalog(region)
	if err != nil {
		return nil, err
	}
	return NewEngine(catalog), nil
}

// Catalog returns the engine's factor catalog.
func (e *Engine) Catalog() *Catalog { return e.catalog }

// Compute converts an activity amount into kg CO2e.
//
// Dispatch is per category; every branch produces a result. Unknown
// activities substitute a documented category default with a logged
// warning, unknown categories apply the generic flat factor, and any
// unexpected internal error collapses to a small fixed fallback value.
// The only errors surfaced to the caller are hard validation failures:
// a non-finite or negative amount, or electricity in a non-kWh unit.
func (e *Engine) Compute(category Category, activity string, amount float64, unit string) (Result, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Result{}, ErrInvalidAmount
	}
	if amount < 0 {
		return Result{}, fmt.Errorf("%w: %v", ErrNegativeAmount, amount)
	}

	var (
		co2  float64
		expl string
		err  error
	)

	switch category {
	case CategoryTransportation:
		co2, expl = e.computeTransportation(activity, amount, unit)
	case CategoryEnergy:
		co2, expl, err = e.computeEnergy(activity, amount, unit)
	case CategoryFood:
		co2, expl = e.computeFood(activity, amount, unit)
	case CategoryWaste:
		co2, expl = e.computeWaste(activity, amount, unit)
	default:
		log.Warn().Str("category", string(category)).Msg("unknown emission category, applying generic factor")
		co2 = roundHalfUp(amount * genericFactor)
		expl = fmt.Sprintf("unknown category %q, using generic factor: %v kg CO2e per unit", string(category), genericFactor)
	}
	if err != nil {
		return Result{}, err
	}

	factor := 0.0
	if amount != 0 {
		factor = co2 / amount
	}

	return Result{
		CO2Equivalent:  co2,
		EmissionFactor: factor,
		Explanation:    expl,
		Region:         e.catalog.Region(),
	}, nil
}

// computeTransportation handles distance-based travel activities.
// Miles are converted to kilometers before the factor lookup.
func (e *Engine) computeTransportation(activity string, amount float64, unit string) (co2 float64, expl string) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("activity", activity).Msg("transportation calculation error")
			co2 = errFallbackTransportation
			expl = fmt.Sprintf("error in calculation, using fallback: %v kg CO2e", errFallbackTransportation)
		}
	}()

	amount, unit = normalizeDistance(amount, unit)

	if !e.catalog.Has(CategoryTransportation, activity) {
		log.Warn().Str("activity", activity).Msg("unknown transportation activity, using default")
		activity = fallbackTransportation
	}

	factor, _, _ := e.catalog.FactorFor(CategoryTransportation, activity)
	co2 = roundHalfUp(amount * factor)
	expl = explain(activity, amount, unit, factor, co2)
	return co2, expl
}

// computeEnergy handles fuel and electricity consumption. Electricity
// strictly requires kWh; fuels with unit-specific factors derive the
// lookup key from activity and unit, falling back to the generic
// factor when the derived key is absent.
func (e *Engine) computeEnergy(activity string, amount float64, unit string) (co2 float64, expl string, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("activity", activity).Msg("energy calculation error")
			co2 = errFallbackEnergy
			expl = fmt.Sprintf("error in calculation, using fallback: %v kg CO2e", errFallbackEnergy)
			err = nil
		}
	}()

	var factor float64
	if activity == ElectricityActivity {
		if !isKWhUnit(unit) {
			return 0, "", fmt.Errorf("%w: electricity requires kWh, got %q", ErrUnsupportedUnit, unit)
		}
		factor, _, _ = e.catalog.FactorFor(CategoryEnergy, ElectricityActivity)
	} else {
		key := activity
		switch activity {
		case "natural_gas", "heating_oil", "propane":
			key = activity + "_" + normalizeUnitKey(unit)
		}
		var lookupErr error
		factor, _, lookupErr = e.catalog.FactorFor(CategoryEnergy, key)
		if lookupErr != nil {
			log.Warn().Str("activity", key).Msg("unknown energy activity, using generic factor")
			factor = genericFactor
		}
	}

	co2 = roundHalfUp(amount * factor)
	expl = explain(activity, amount, unit, factor, co2)
	return co2, expl, nil
}

// computeFood handles food consumption by weight, pounds, or servings.
func (e *Engine) computeFood(activity string, amount float64, unit string) (co2 float64, expl string) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("activity", activity).Msg("food calculation error")
			co2 = errFallbackFood
			expl = fmt.Sprintf("error in calculation, using fallback: %v kg CO2e", errFallbackFood)
		}
	}()

	amount, unit = normalizeFoodMass(activity, amount, unit)

	if !e.catalog.Has(CategoryFood, activity) {
		log.Warn().Str("activity", activity).Msg("unknown food activity, using default")
		activity = fallbackFood
	}

	factor, _, _ := e.catalog.FactorFor(CategoryFood, activity)
	co2 = roundHalfUp(amount * factor)
	expl = explain(activity, amount, unit, factor, co2)
	return co2, expl
}

// computeWaste handles disposal, recycling and composting. Factors may
// be negative (carbon credit); the explanation distinguishes "saves"
// from "emits" based on sign.
func (e *Engine) computeWaste(activity string, amount float64, unit string) (co2 float64, expl string) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("activity", activity).Msg("waste calculation error")
			co2 = errFallbackWaste
			expl = fmt.Sprintf("error in calculation, using fallback: %v kg CO2e", errFallbackWaste)
		}
	}()

	amount, unit = normalizeMass(amount, unit)

	if !e.catalog.Has(CategoryWaste, activity) {
		log.Warn().Str("activity", activity).Msg("unknown waste activity, using default")
		activity = fallbackWaste
	}

	factor, _, _ := e.catalog.FactorFor(CategoryWaste, activity)
	co2 = roundHalfUp(amount * factor)

	impact := "emits"
	if co2 < 0 {
		impact = "saves"
	}
	expl = fmt.Sprintf("%s: %s %s × %s kg CO2e/%s = %s %s kg CO2e",
		activity, formatAmount(amount), unit, formatAmount(factor), unit,
		impact, formatAmount(math.Abs(co2)))
	return co2, expl
}

// roundHalfUp rounds to two decimal places with ties away from zero.
func roundHalfUp(v float64) float64 {
	return math.Round(v*100) / 100
}

// explain renders the standard calculation explanation string.
func explain(activity string, amount float64, unit string, factor, co2 float64) string {
	return fmt.Sprintf("%s: %s %s × %s kg CO2e/%s = %s kg CO2e",
		activity, formatAmount(amount), unit, formatAmount(factor), unit, formatAmount(co2))
}

// formatAmount renders a float without trailing zeros.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// normalizeUnitKey lowercases a unit for factor-key derivation and
// maps common synonyms onto catalog key suffixes.
func normalizeUnitKey(unit string) string {
	switch u := strings.ToLower(unit); u {
	case "therm":
		return "therms"
	case "liter", "litre", "litres":
		return "liters"
	case "gallon":
		return "gallons"
	default:
		return u
	}
}
