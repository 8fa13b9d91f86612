package recommend

import (
	"math"

	"github.com/carbontrack/carbontrack/internal/emissions"
	"github.com/carbontrack/carbontrack/internal/insights"
	"github.com/carbontrack/carbontrack/internal/records"
)

// Scoring weights. Potential impact dominates; easy, immediate and
// cheap interventions get flat bonuses, and categories that dominate
// the user's breakdown pull their templates up.
const (
	savingsWeight      = 50.0
	easyBonus          = 10.0
	immediateBonus     = 10.0
	cheapBonus         = 5.0
	categoryShareBonus = 20.0
)

// monthsPerYear annualizes savings estimates; the supplied history is
// treated as one period.
const monthsPerYear = 12

// scoreTemplate scores one template against the user's analysis and
// logged activity set. A template with a non-empty trigger set none of
// the user's activities intersect scores 0 and is excluded.
func scoreTemplate(
	t Template,
	analysis insights.Analysis,
	userActivities map[string]struct{},
	factors *emissions.Catalog,
) float64 {
	if len(t.Triggers) > 0 && !t.Triggered(userActivities) {
		return 0
	}

	score := t.Savings * savingsWeight

	if t.Difficulty == DifficultyEasy {
		score += easyBonus
	}
	if t.Timeframe == TimeframeImmediate {
		score += immediateBonus
	}
	if t.Cost == CostNone || t.Cost == CostLow {
		score += cheapBonus
	}

	// Category relevance: the first trigger whose category shows up in
	// the user's breakdown adds that category's share of total
	// emissions, scaled.
	if analysis.TotalEmissions > 0 {
		for _, trigger := range t.Triggers {
			cat, ok := factors.CategoryOf(trigger)
			if !ok {
				continue
			}
			if total := analysis.CategoryBreakdown[cat]; total > 0 {
				score += total / analysis.TotalEmissions * categoryShareBonus
				break
			}
		}
	}

	return score
}

// estimateAnnualSavings estimates kg CO2e saved per year if the user
// adopts the template. Templates without triggers apply their savings
// factor to the whole footprint; otherwise only emissions from trigger
// activities count. The one-period history is annualized by 12.
func estimateAnnualSavings(t Template, analysis insights.Analysis, recs []records.ActivityRecord) float64 {
	if len(recs) == 0 || analysis.TotalEmissions == 0 {
		return 0
	}

	if len(t.Triggers) == 0 {
		return round1(analysis.TotalEmissions * t.Savings * monthsPerYear)
	}

	triggers := make(map[string]struct{}, len(t.Triggers))
	for _, trigger := range t.Triggers {
		triggers[trigger] = struct{}{}
	}

	var relevant float64
	for _, r := range recs {
		if _, ok := triggers[r.Activity]; ok {
			relevant += r.CO2Equivalent
		}
	}
	return round1(relevant * monthsPerYear * t.Savings)
}

// generalScore ranks templates for users without history: impact
// first, with smaller nudges toward easy and cheap interventions.
func generalScore(t Template) float64 {
	score := t.Savings * 0.7
	if t.Difficulty == DifficultyEasy {
		score += 0.3
	}
	if t.Cost == CostNone || t.Cost == CostLow {
		score += 0.2
	}
	return score
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
