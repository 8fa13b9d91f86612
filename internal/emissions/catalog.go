package emissions

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

//go:embed factors.yaml
var factorsYAML []byte

// catalogFile mirrors the embedded factors.yaml layout.
type catalogFile struct {
	Version    string                          `yaml:"version"`
	Categories map[string]catalogCategoryEntry `yaml:"categories"`
	Grid       map[string]float64              `yaml:"electricity_grid"`
}

type catalogCategoryEntry struct {
	Description string             `yaml:"description"`
	Unit        string             `yaml:"unit"`
	Factors     map[string]float64 `yaml:"factors"`
}

// electricCarKWhPerKm is the assumed electric-vehicle consumption used
// to derive the car_electric factor from the regional grid factor.
const electricCarKWhPerKm = 0.3

// ElectricityActivity is the strict-unit electricity activity key.
const ElectricityActivity = "electricity"

// Derived activity keys added at catalog construction.
const electricCarActivity = "car_electric"

var (
	baseOnce    sync.Once
	baseCatalog *catalogFile
	baseErr     error
)

// loadBase parses the embedded factor table once per process.
func loadBase() (*catalogFile, error) {
	baseOnce.Do(func() {
		var cf catalogFile
		if err := yaml.Unmarshal(factorsYAML, &cf); err != nil {
			baseErr = fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
			return
		}
		if _, err := semver.NewVersion(cf.Version); err != nil {
			baseErr = fmt.Errorf("%w: version %q is not valid semver", ErrInvalidCatalog, cf.Version)
			return
		}
		for _, cat := range Categories() {
			if _, ok := cf.Categories[string(cat)]; !ok {
				baseErr = fmt.Errorf("%w: missing category %q", ErrInvalidCatalog, cat)
				return
			}
		}
		baseCatalog = &cf
	})
	return baseCatalog, baseErr
}

// Catalog is an immutable (category, activity) -> factor mapping
// resolved for a single region. It is safe for concurrent use.
type Catalog struct {
	region       Region
	version      string
	factors      map[Category]map[string]float64
	descriptions map[Category]string
	units        map[Category]string
}

// NewCatalog builds the factor catalog for the given region.
// Region-dependent factors (electricity, and the derived electric-car
// factor) are resolved once here; factors missing a region-specific
// override use the global average.
func NewCatalog(region Region) (*Catalog, error) {
	if _, err := ParseRegion(string(region)); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}

	base, err := loadBase()
	if err != nil {
		return nil, err
	}

	grid, ok := base.Grid[string(region)]
	if !ok {
		grid = base.Grid[string(RegionGlobalAverage)]
	}

	c := &Catalog{
		region:       region,
		version:      base.Version,
		factors:      make(map[Category]map[string]float64, len(base.Categories)),
		descriptions: make(map[Category]string, len(base.Categories)),
		units:        make(map[Category]string, len(base.Categories)),
	}
	for _, cat := range Categories() {
		entry := base.Categories[string(cat)]
		factors := make(map[string]float64, len(entry.Factors)+2)
		for k, v := range entry.Factors {
			factors[k] = v
		}
		c.factors[cat] = factors
		c.descriptions[cat] = entry.Description
		c.units[cat] = entry.Unit
	}

	c.factors[CategoryEnergy][ElectricityActivity] = grid
	c.factors[CategoryTransportation][electricCarActivity] = electricCarKWhPerKm * grid

	return c, nil
}

// Region returns the region the catalog was built for.
func (c *Catalog) Region() Region { return c.region }

// Version returns the semver version of the embedded factor table.
func (c *Catalog) Version() string { return c.version }

// FactorFor returns the emission factor and its native unit for a
// (category, activity) pair. Unknown activities return
// ErrFactorNotFound; the caller decides the fallback.
func (c *Catalog) FactorFor(category Category, activity string) (float64, string, error) {
	factors, ok := c.factors[category]
	if !ok {
		return 0, "", fmt.Errorf("%w: category %q", ErrFactorNotFound, category)
	}
	factor, ok := factors[activity]
	if !ok {
		return 0, "", fmt.Errorf("%w: %s/%s", ErrFactorNotFound, category, activity)
	}
	return factor, c.activityUnit(category, activity), nil
}

// Has reports whether the catalog knows a factor for the pair.
func (c *Catalog) Has(category Category, activity string) bool {
	_, ok := c.factors[category][activity]
	return ok
}

// CategoryOf returns the category that carries the given activity key.
// Used by the recommendation scorer to relate trigger activities to a
// user's category breakdown.
func (c *Catalog) CategoryOf(activity string) (Category, bool) {
	for _, cat := range Categories() {
		if _, ok := c.factors[cat][activity]; ok {
			return cat, true
		}
	}
	return CategoryUnknown, false
}

// ActivityInfo describes one catalog activity for display.
type ActivityInfo struct {
	Key    string  `json:"key"`
	Name   string  `json:"name"`
	Unit   string  `json:"unit"`
	Factor float64 `json:"factor"`
}

// CategoryActivities groups a category's activities with its
// description for rendering activity pickers.
type CategoryActivities struct {
	Description string         `json:"description"`
	Activities  []ActivityInfo `json:"activities"`
}

// ListActivities renders the full catalog as category ->
// {description, activities}. Factors reflect the region-adjusted
// values; activities are sorted by key for stable output.
func (c *Catalog) ListActivities() map[Category]CategoryActivities {
	out := make(map[Category]CategoryActivities, len(c.factors))
	for _, cat := range Categories() {
		factors := c.factors[cat]
		infos := make([]ActivityInfo, 0, len(factors))
		for key, factor := range factors {
			infos = append(infos, ActivityInfo{
				Key:    key,
				Name:   displayName(key),
				Unit:   c.activityUnit(cat, key),
				Factor: factor,
			})
		}
		sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })
		out[cat] = CategoryActivities{
			Description: c.descriptions[cat],
			Activities:  infos,
		}
	}
	return out
}

// unitSuffixes maps activity-key suffixes to display units for
// activities whose key encodes its own unit (energy fuels).
var unitSuffixes = []struct {
	suffix string
	unit   string
}{
	{"_therms", "therms"},
	{"_kwh", "kWh"},
	{"_m3", "m3"},
	{"_liters", "liters"},
	{"_gallons", "gallons"},
	{"_tons", "tons"},
	{"_kg", "kg"},
}

func (c *Catalog) activityUnit(category Category, activity string) string {
	if category == CategoryEnergy {
		for _, s := range unitSuffixes {
			if strings.HasSuffix(activity, s.suffix) {
				return s.unit
			}
		}
	}
	return c.units[category]
}

// displayName derives a human-readable name from an activity key,
// e.g. "car_gasoline_medium" -> "Car Gasoline Medium".
func displayName(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
