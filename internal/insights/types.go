// Package insights analyzes a user's activity history and derives
// aggregate emission statistics and natural-language insights.
package insights

import "github.com/carbontrack/carbontrack/internal/emissions"

// ActivityImpact is one activity's accumulated emissions, used for
// the top-activities ranking.
type ActivityImpact struct {
	Activity      string  `json:"activity"`
	CO2Equivalent float64 `json:"co2_equivalent"`
}

// DominantCategory names the category with the largest share of the
// user's total emissions.
type DominantCategory struct {
	Category   emissions.Category `json:"category"`
	Percentage float64            `json:"percentage"`
}

// Distribution classifies how emissions spread across categories.
type Distribution string

// Distribution shapes. Concentrated means the top category exceeds
// three times the second-ranked one.
const (
	DistributionConcentrated Distribution = "concentrated"
	DistributionBalanced     Distribution = "balanced"
)

// Patterns holds the coarse classification derived from the breakdown.
type Patterns struct {
	DominantCategory *DominantCategory `json:"dominant_category,omitempty"`
	Distribution     Distribution      `json:"distribution,omitempty"`
}

// Analysis is the result of one pass over a user's records. It is
// computed fresh on every call and never cached.
type Analysis struct {
	TotalEmissions    float64                        `json:"total_emissions"`
	CategoryBreakdown map[emissions.Category]float64 `json:"category_breakdown"`

	// ActivityTotals keys "category:activity" to accumulated CO2e.
	ActivityTotals map[string]float64 `json:"activity_totals"`

	TopActivities []ActivityImpact   `json:"top_activities"`
	MonthlyTrends map[string]float64 `json:"monthly_trends"`
	Patterns      Patterns           `json:"patterns"`
	Insights      []string           `json:"insights"`
}
