package insights

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/carbontrack/carbontrack/internal/emissions"
	"github.com/carbontrack/carbontrack/internal/records"
)

// monthlyBaselineTonnes is the reference monthly footprint the total
// is compared against (~16 t CO2e per year for an average American).
// The period of the supplied records is not enforced; the comparison
// assumes the caller passed roughly one month of history.
const monthlyBaselineTonnes = 1.33

// Insight thresholds.
const (
	aboveBaselineRatio = 1.5
	belowBaselineRatio = 0.8
	beefInsightKg      = 10.0
	carInsightKg       = 20.0
	topActivityCount   = 5
	concentratedRatio  = 3.0
)

// Analyze aggregates a user's activity records in a single pass:
// per-category totals, per-(category,activity) totals, monthly trends,
// the top activities by impact, heuristic insights and a coarse
// distribution classification. Records with unparsable dates skip the
// month bucket only; their emissions still count everywhere else.
func Analyze(recs []records.ActivityRecord) Analysis {
	if len(recs) == 0 {
		return Analysis{
			CategoryBreakdown: map[emissions.Category]float64{},
			ActivityTotals:    map[string]float64{},
			MonthlyTrends:     map[string]float64{},
			TopActivities:     []ActivityImpact{},
			Insights:          []string{},
		}
	}

	categoryTotals := make(map[emissions.Category]float64)
	activityTotals := make(map[string]float64)
	monthlyTrends := make(map[string]float64)

	for _, r := range recs {
		co2 := r.CO2Equivalent

		categoryTotals[r.Category] += co2
		activityTotals[string(r.Category)+":"+r.Activity] += co2

		if month, ok := r.MonthKey(); ok {
			monthlyTrends[month] += co2
		}
	}

	var total float64
	for _, v := range categoryTotals {
		total += v
	}

	return Analysis{
		TotalEmissions:    round2(total),
		CategoryBreakdown: roundMap(categoryTotals),
		ActivityTotals:    roundStringMap(activityTotals),
		TopActivities:     topActivities(activityTotals),
		MonthlyTrends:     roundStringMap(monthlyTrends),
		Patterns:          identifyPatterns(categoryTotals, total),
		Insights:          generateInsights(categoryTotals, activityTotals, total),
	}
}

// topActivities ranks accumulated (category,activity) totals by CO2e
// descending and keeps the top five. Ties are broken by key for
// deterministic output.
func topActivities(activityTotals map[string]float64) []ActivityImpact {
	type entry struct {
		key string
		co2 float64
	}
	entries := make([]entry, 0, len(activityTotals))
	for k, v := range activityTotals {
		entries = append(entries, entry{key: k, co2: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].co2 != entries[j].co2 {
			return entries[i].co2 > entries[j].co2
		}
		return entries[i].key < entries[j].key
	})

	n := len(entries)
	if n > topActivityCount {
		n = topActivityCount
	}
	top := make([]ActivityImpact, 0, n)
	for _, e := range entries[:n] {
		activity := e.key
		if idx := strings.Index(activity, ":"); idx >= 0 {
			activity = activity[idx+1:]
		}
		top = append(top, ActivityImpact{Activity: activity, CO2Equivalent: round2(e.co2)})
	}
	return top
}

// generateInsights produces the ordered heuristic insight strings.
func generateInsights(
	categoryTotals map[emissions.Category]float64,
	activityTotals map[string]float64,
	total float64,
) []string {
	if total == 0 {
		return []string{"Start tracking your activities to get personalized insights!"}
	}

	insights := make([]string, 0, 4)

	if cat, share, ok := largestShare(categoryTotals, total); ok {
		insights = append(insights, fmt.Sprintf("%s makes up %.0f%% of your carbon footprint",
			titleCase(string(cat)), share*100))
	}

	// Compared against monthlyBaselineTonnes, assuming one month of
	// records. 1.5 and 0.8 are the cut-offs the product has always
	// shipped with.
	switch {
	case total > aboveBaselineRatio:
		insights = append(insights, "Your emissions are above average - great opportunity for reduction!")
	case total < belowBaselineRatio:
		insights = append(insights, "You're doing great! Your emissions are below average.")
	default:
		insights = append(insights, "Your emissions are close to average - small changes can make a big impact.")
	}

	var beefTotal, carTotal float64
	for key, co2 := range activityTotals {
		lower := strings.ToLower(key)
		if strings.Contains(lower, "beef") {
			beefTotal += co2
		}
		if strings.Contains(lower, "car_gasoline") {
			carTotal += co2
		}
	}
	if beefTotal > beefInsightKg {
		insights = append(insights, "Reducing beef consumption could significantly lower your food footprint")
	}
	if carTotal > carInsightKg {
		insights = append(insights, "Transportation is a major contributor - consider alternatives for some trips")
	}

	return insights
}

// identifyPatterns classifies the breakdown: the dominant category and
// whether the distribution is concentrated (top > 3x second) or
// balanced.
func identifyPatterns(categoryTotals map[emissions.Category]float64, total float64) Patterns {
	if total == 0 || len(categoryTotals) == 0 {
		return Patterns{}
	}

	var patterns Patterns
	if cat, share, ok := largestShare(categoryTotals, total); ok {
		patterns.DominantCategory = &DominantCategory{
			Category:   cat,
			Percentage: math.Round(share*1000) / 10,
		}
	}

	if len(categoryTotals) > 1 {
		values := make([]float64, 0, len(categoryTotals))
		for _, v := range categoryTotals {
			values = append(values, v)
		}
		sort.Sort(sort.Reverse(sort.Float64Slice(values)))
		if values[0] > values[1]*concentratedRatio {
			patterns.Distribution = DistributionConcentrated
		} else {
			patterns.Distribution = DistributionBalanced
		}
	}
	return patterns
}

// largestShare returns the category with the largest total and its
// share of the overall emissions. Ties resolve to the lexically first
// category for determinism.
func largestShare(categoryTotals map[emissions.Category]float64, total float64) (emissions.Category, float64, bool) {
	if total == 0 || len(categoryTotals) == 0 {
		return "", 0, false
	}
	var (
		best    emissions.Category
		bestCO2 float64
		found   bool
	)
	for cat, co2 := range categoryTotals {
		if !found || co2 > bestCO2 || (co2 == bestCO2 && cat < best) {
			best, bestCO2, found = cat, co2, true
		}
	}
	return best, bestCO2 / total, true
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundMap(m map[emissions.Category]float64) map[emissions.Category]float64 {
	out := make(map[emissions.Category]float64, len(m))
	for k, v := range m {
		out[k] = round2(v)
	}
	return out
}

func roundStringMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = round2(v)
	}
	return out
}
