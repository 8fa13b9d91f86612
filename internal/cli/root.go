// Package cli implements the carbontrack developer CLI, a thin harness
// over the emission computation and recommendation engines.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/carbontrack/carbontrack/internal/config"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// cfg holds the loaded configuration for the running command.
var cfg = config.DefaultConfig() //nolint:gochecknoglobals // set once in PersistentPreRunE

// NewRootCmd creates the root cobra command for the carbontrack CLI.
// It wires up config loading, logging and the compute, activities,
// insights and recommend subcommands.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "carbontrack",
		Short:   "CarbonTrack emission and recommendation engine",
		Long:    "CarbonTrack: convert activity amounts to CO2e and generate reduction recommendations",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded

			level := cfg.Logging.Level
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				level = "debug"
			}
			return config.InitLogger(level, cfg.Logging.File)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default ~/.carbontrack/config.yaml)")
	cmd.PersistentFlags().String("region", "", "emission factor region (default from config)")
	cmd.PersistentFlags().String("output", "", "output format (table, json; default table on a terminal)")

	cmd.AddCommand(newComputeCmd(), newActivitiesCmd(), newInsightsCmd(), newRecommendCmd())

	return cmd
}

const rootCmdExample = `  # Price a single activity entry
  carbontrack compute --category transportation --activity car_gasoline_medium \
    --amount 100 --unit km

  # List available activities with region-adjusted factors
  carbontrack activities --region eu_average

  # Analyze a month of records
  carbontrack insights --records records.json

  # Top 5 food recommendations
  carbontrack recommend --records records.json --category food --limit 5`
