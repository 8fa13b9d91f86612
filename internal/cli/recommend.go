package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carbontrack/carbontrack/internal/recommend"
	"github.com/carbontrack/carbontrack/internal/records"
)

// recommendParams holds the flag values for the recommend command.
type recommendParams struct {
	RecordsPath string
	Category    string
	Limit       int
}

// newRecommendCmd creates the "recommend" subcommand, which scores the
// template catalog against a records file. Without a records file it
// returns the curated general set for new users.
func newRecommendCmd() *cobra.Command {
	var params recommendParams

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Generate ranked reduction recommendations",
		Long: `Score every intervention template against the supplied history and
return the top matches by estimated impact. With no records file the
curated general set for new users is returned instead.`,
		Example: `  carbontrack recommend --records records.json
  carbontrack recommend --records records.json --category food --limit 5
  carbontrack recommend --limit 3`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := engineForRegion(cmd)
			if err != nil {
				return err
			}
			recommender, err := recommend.NewEngine(engine.Catalog())
			if err != nil {
				return err
			}

			var recs []records.ActivityRecord
			if params.RecordsPath != "" {
				recs, err = records.LoadFile(params.RecordsPath)
				if err != nil {
					return err
				}
			}

			scored := recommender.Generate(recs, recommend.Options{
				Group: recommend.Group(params.Category),
				Limit: params.Limit,
			})

			format, err := outputFormat(flagString(cmd, "output"))
			if err != nil {
				return err
			}
			if format == "json" {
				return writeJSON(cmd.OutOrStdout(), scored)
			}

			out := cmd.OutOrStdout()
			if len(scored) == 0 {
				fmt.Fprintln(out, "No recommendations for the given filter.")
				return nil
			}
			for i, rec := range scored {
				fmt.Fprintf(out, "%d. %s [%s]\n", i+1, rec.Title, rec.Group)
				fmt.Fprintf(out, "   %s\n", rec.Description)
				fmt.Fprintf(out, "   Action: %s\n", rec.Action)
				fmt.Fprintf(out, "   Difficulty: %s  Cost: %s  Timeframe: %s\n",
					rec.Difficulty, rec.Cost, rec.Timeframe)
				if rec.EstimatedAnnualSavings > 0 {
					fmt.Fprintf(out, "   Estimated savings: %s kg CO2e/year\n",
						formatKg(rec.EstimatedAnnualSavings))
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&params.RecordsPath, "records", "", "path to a JSON or YAML activity records file")
	cmd.Flags().StringVar(&params.Category, "category", "", "restrict to one recommendation group")
	cmd.Flags().IntVar(&params.Limit, "limit", recommend.DefaultLimit, "maximum number of recommendations")

	return cmd
}
