package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/carbontrack/carbontrack/internal/emissions"
	"github.com/carbontrack/carbontrack/internal/equivalents"
	"github.com/carbontrack/carbontrack/internal/insights"
	"github.com/carbontrack/carbontrack/internal/records"
)

// newInsightsCmd creates the "insights" subcommand, which runs the
// pattern analyzer over a records file.
func newInsightsCmd() *cobra.Command {
	var recordsPath string

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Analyze emission patterns from a records file",
		Long: `Run the pattern analyzer over a JSON or YAML list of activity
records: totals per category and activity, monthly trends, the top
activities by impact, and heuristic insight strings.`,
		Example: `  carbontrack insights --records records.json
  carbontrack insights --records history.yaml --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			recs, err := records.LoadFile(recordsPath)
			if err != nil {
				return err
			}
			analysis := insights.Analyze(recs)

			format, err := outputFormat(flagString(cmd, "output"))
			if err != nil {
				return err
			}
			if format == "json" {
				return writeJSON(cmd.OutOrStdout(), analysis)
			}

			renderAnalysis(cmd, analysis)
			return nil
		},
	}

	cmd.Flags().StringVar(&recordsPath, "records", "", "path to a JSON or YAML activity records file")
	_ = cmd.MarkFlagRequired("records")

	return cmd
}

func renderAnalysis(cmd *cobra.Command, analysis insights.Analysis) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Total emissions: %s kg CO2e\n", formatKg(analysis.TotalEmissions))
	if eq := equivalents.ForKg(analysis.TotalEmissions); !eq.Empty {
		fmt.Fprintf(out, "%s\n", eq.Display)
	}
	fmt.Fprintln(out)

	if len(analysis.CategoryBreakdown) > 0 {
		fmt.Fprintln(out, "By category:")
		cats := make([]string, 0, len(analysis.CategoryBreakdown))
		for cat := range analysis.CategoryBreakdown {
			cats = append(cats, string(cat))
		}
		sort.Strings(cats)
		for _, cat := range cats {
			fmt.Fprintf(out, "  %-16s %12s kg\n", cat,
				formatKg(analysis.CategoryBreakdown[emissions.Category(cat)]))
		}
		fmt.Fprintln(out)
	}

	if len(analysis.TopActivities) > 0 {
		fmt.Fprintln(out, "Top activities:")
		for i, a := range analysis.TopActivities {
			fmt.Fprintf(out, "  %d. %-24s %12s kg\n", i+1, a.Activity, formatKg(a.CO2Equivalent))
		}
		fmt.Fprintln(out)
	}

	if analysis.Patterns.DominantCategory != nil {
		fmt.Fprintf(out, "Dominant category: %s (%.1f%%)\n",
			analysis.Patterns.DominantCategory.Category, analysis.Patterns.DominantCategory.Percentage)
	}
	if analysis.Patterns.Distribution != "" {
		fmt.Fprintf(out, "Distribution: %s\n", analysis.Patterns.Distribution)
	}

	if len(analysis.Insights) > 0 {
		fmt.Fprintln(out, "\nInsights:")
		for _, insight := range analysis.Insights {
			fmt.Fprintf(out, "  - %s\n", insight)
		}
	}
}
