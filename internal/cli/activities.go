package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carbontrack/carbontrack/internal/emissions"
)

// newActivitiesCmd creates the "activities" subcommand, which lists
// the catalog's activities with their region-adjusted factors.
func newActivitiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activities",
		Short: "List available activities and emission factors",
		Long: `List every activity the factor catalog knows, grouped by category,
with the factor adjusted for the selected region.`,
		Example: `  carbontrack activities
  carbontrack activities --region eu_average --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := engineForRegion(cmd)
			if err != nil {
				return err
			}
			listing := engine.Catalog().ListActivities()

			format, err := outputFormat(flagString(cmd, "output"))
			if err != nil {
				return err
			}
			if format == "json" {
				return writeJSON(cmd.OutOrStdout(), listing)
			}

			out := cmd.OutOrStdout()
			for _, cat := range emissions.Categories() {
				group := listing[cat]
				fmt.Fprintf(out, "%s: %s\n", cat, group.Description)
				for _, a := range group.Activities {
					fmt.Fprintf(out, "  %-24s %10.3f kg CO2e/%s  (%s)\n", a.Key, a.Factor, a.Unit, a.Name)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	return cmd
}
