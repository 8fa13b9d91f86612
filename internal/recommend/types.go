// Package recommend scores a static catalog of intervention templates
// against a user's emission history and produces ranked, explainable
// reduction suggestions.
package recommend

// Group is a recommendation grouping. It covers the emission
// categories plus lifestyle interventions that cut across them.
type Group string

// Recommendation groups in catalog-declaration order.
const (
	GroupTransportation Group = "transportation"
	GroupEnergy         Group = "energy"
	GroupFood           Group = "food"
	GroupWaste          Group = "waste"
	GroupLifestyle      Group = "lifestyle"
)

// Difficulty qualifies how hard an intervention is to adopt.
type Difficulty string

// Difficulty levels.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Cost qualifies the monetary cost of an intervention.
type Cost string

// Cost levels.
const (
	CostNone   Cost = "none"
	CostLow    Cost = "low"
	CostMedium Cost = "medium"
	CostHigh   Cost = "high"
)

// Timeframe qualifies when an intervention pays off.
type Timeframe string

// Timeframes.
const (
	TimeframeImmediate  Timeframe = "immediate"
	TimeframeMediumTerm Timeframe = "medium-term"
	TimeframeLongTerm   Timeframe = "long-term"
)

// Template is one static intervention template. An empty trigger set
// marks a universally relevant template.
type Template struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Action      string     `json:"action" yaml:"action"`
	Group       Group      `json:"category" yaml:"-"`
	Kind        string     `json:"kind" yaml:"kind"`
	Savings     float64    `json:"potential_savings_factor" yaml:"savings_factor"`
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty"`
	Cost        Cost       `json:"cost" yaml:"cost"`
	Timeframe   Timeframe  `json:"timeframe" yaml:"timeframe"`
	Triggers    []string   `json:"triggers" yaml:"triggers"`
}

// Triggered reports whether any of the user's logged activities is in
// the template's trigger set. Templates without triggers are
// universally relevant.
func (t Template) Triggered(userActivities map[string]struct{}) bool {
	if len(t.Triggers) == 0 {
		return true
	}
	for _, trigger := range t.Triggers {
		if _, ok := userActivities[trigger]; ok {
			return true
		}
	}
	return false
}

// ScoredRecommendation is a template plus its relevance score and
// estimated annual savings for one user. Never persisted here; the
// caller owns acceptance and completion state.
type ScoredRecommendation struct {
	Template

	Score float64 `json:"score"`

	// EstimatedAnnualSavings is kg CO2e per year, annualized from the
	// supplied history (0 when there is no history to annualize).
	EstimatedAnnualSavings float64 `json:"estimated_annual_savings"`
}
