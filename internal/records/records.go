// Package records defines the activity record shape shared by the
// computation, analysis and recommendation engines, plus a file loader
// for the CLI harness.
package records

import (
	"time"

	"github.com/carbontrack/carbontrack/internal/emissions"
)

// ActivityRecord is one logged activity with its computed emission.
// The engines treat records as read-only: they are consumed as values
// and never mutated.
type ActivityRecord struct {
	ID          string             `json:"id,omitempty" yaml:"id,omitempty"`
	Category    emissions.Category `json:"category" yaml:"category"`
	Activity    string             `json:"activity" yaml:"activity"`
	Amount      float64            `json:"amount" yaml:"amount"`
	Unit        string             `json:"unit" yaml:"unit"`
	Date        string             `json:"date" yaml:"date"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`

	// CO2Equivalent and EmissionFactor are filled by the computation
	// engine when the record is priced, and carried through when
	// history is re-read.
	CO2Equivalent  float64 `json:"co2_equivalent" yaml:"co2_equivalent"`
	EmissionFactor float64 `json:"emission_factor,omitempty" yaml:"emission_factor,omitempty"`
}

// Date layouts accepted when bucketing records by month.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// MonthKey parses the record date and returns its "YYYY-MM" bucket.
// Unparsable dates return ok=false; callers skip the month bucket but
// keep the record in all other aggregates.
func (r ActivityRecord) MonthKey() (string, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, r.Date); err == nil {
			return t.Format("2006-01"), true
		}
	}
	return "", false
}
