// Command carbontrack is the developer CLI over the emission
// computation and recommendation engines.
package main

import (
	"os"

	"github.com/carbontrack/carbontrack/internal/cli"
	"github.com/carbontrack/carbontrack/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps failure onto exit code 1.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}
