package recommend

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/carbontrack/carbontrack/internal/emissions"
	"github.com/carbontrack/carbontrack/internal/insights"
	"github.com/carbontrack/carbontrack/internal/records"
)

// DefaultLimit is the number of recommendations returned when the
// caller does not specify one.
const DefaultLimit = 8

// Options filter and bound Generate's output.
type Options struct {
	// Group restricts recommendations to one group. Empty means all
	// groups; an unknown group yields an empty result, not an error.
	Group Group

	// Limit caps the number of recommendations (DefaultLimit if <= 0).
	Limit int
}

// Engine orchestrates pattern analysis, template scoring and top-N
// selection. It holds only immutable catalogs and is safe for
// concurrent use.
type Engine struct {
	templates *Catalog
	factors   *emissions.Catalog
}

// NewEngine builds a recommendation engine over the given factor
// catalog. The template catalog is loaded from the embedded data.
func NewEngine(factors *emissions.Catalog) (*Engine, error) {
	templates, err := LoadCatalog()
	if err != nil {
		return nil, err
	}
	return &Engine{templates: templates, factors: factors}, nil
}

// Generate returns ranked recommendations for the supplied history,
// sorted by score descending (stable: ties keep catalog order) and
// truncated to the limit. An empty history yields the curated general
// set instead of scored output.
func (e *Engine) Generate(recs []records.ActivityRecord, opts Options) []ScoredRecommendation {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	groups, ok := e.selectGroups(opts.Group)
	if !ok {
		log.Debug().Str("group", string(opts.Group)).Msg("unknown recommendation group filter")
		return []ScoredRecommendation{}
	}

	if len(recs) == 0 {
		return e.generalRecommendations(groups, limit)
	}

	analysis := insights.Analyze(recs)
	userActivities := records.Activities(recs)

	scored := make([]ScoredRecommendation, 0, len(groups)*4)
	for _, group := range groups {
		for _, t := range e.templates.TemplatesFor(group) {
			score := scoreTemplate(t, analysis, userActivities, e.factors)
			if score <= 0 {
				continue
			}
			scored = append(scored, ScoredRecommendation{
				Template:               t,
				Score:                  score,
				EstimatedAnnualSavings: estimateAnnualSavings(t, analysis, recs),
			})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// Analyze exposes the pattern analysis used for scoring so callers can
// render insight views from the same engine.
func (e *Engine) Analyze(recs []records.ActivityRecord) insights.Analysis {
	return insights.Analyze(recs)
}

// selectGroups resolves the group filter to the groups to score, in
// catalog-declaration order.
func (e *Engine) selectGroups(filter Group) ([]Group, bool) {
	if filter == "" {
		return e.templates.Groups(), true
	}
	if e.templates.TemplatesFor(filter) == nil {
		return nil, false
	}
	return []Group{filter}, true
}

// generalRecommendations picks one template per group for users with
// no history: the best by impact/ease/cost heuristic, in group order,
// with zero estimated savings (nothing to annualize).
func (e *Engine) generalRecommendations(groups []Group, limit int) []ScoredRecommendation {
	general := make([]ScoredRecommendation, 0, len(groups))
	for _, group := range groups {
		templates := e.templates.TemplatesFor(group)
		if len(templates) == 0 {
			continue
		}
		best := templates[0]
		for _, t := range templates[1:] {
			if generalScore(t) > generalScore(best) {
				best = t
			}
		}
		general = append(general, ScoredRecommendation{Template: best})
	}
	if len(general) > limit {
		general = general[:limit]
	}
	return general
}
