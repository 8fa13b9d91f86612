package emissions

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors surfaced by the catalog and the computation engine.
// These can be compared with errors.Is().
var (
	// ErrUnknownRegion indicates a region outside the supported set.
	// Regions are validated at catalog construction, never substituted.
	ErrUnknownRegion = constError("unknown region")

	// ErrFactorNotFound indicates an activity the catalog has no factor for.
	// The engine, not the catalog, decides the fallback activity.
	ErrFactorNotFound = constError("emission factor not found")

	// ErrUnsupportedUnit indicates a unit the category cannot accept.
	// Today this only fires for electricity in a non-kWh unit, which
	// almost certainly signals a caller bug rather than messy data.
	ErrUnsupportedUnit = constError("unsupported unit for activity")

	// ErrNegativeAmount indicates a negative activity amount.
	ErrNegativeAmount = constError("activity amount cannot be negative")

	// ErrInvalidAmount indicates a NaN or infinite activity amount.
	ErrInvalidAmount = constError("activity amount is not a finite number")

	// ErrInvalidCatalog indicates the embedded factor table failed to load.
	ErrInvalidCatalog = constError("invalid emission factor catalog")
)
