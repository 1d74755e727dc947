// Package cli wires the promq command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/promq-io/promq/pkg/version"
)

var (
	serverFlag  string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "promq",
	Short: "promq - query Prometheus-compatible servers from the command line",
	Long: `promq issues read-only queries against a Prometheus-compatible
monitoring server and renders the results for humans or scripts.

Each invocation is a single request/response/render cycle: instant and
range queries, label and series listings, and scrape target state.
Results print as aligned tables or lists by default, or as JSON with
--json for machine consumption.

Time arguments accept an RFC3339 UTC timestamp (2024-01-02T15:04:05Z),
a relative duration meaning "that long before now" (30s, 5m, 2h, 1d),
or the literal "now".`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "Server base URL (overrides config file and PROMQ_SERVER_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose output (debug logging)")

	rootCmd.AddCommand(newQueryCmd())
	rootCmd.AddCommand(newQueryRangeCmd())
	rootCmd.AddCommand(newLabelsCmd())
	rootCmd.AddCommand(newSeriesCmd())
	rootCmd.AddCommand(newTargetsCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("promq version %s\n", version.Version)
			cmd.Printf("Git commit: %s\n", version.GitCommit)
			cmd.Printf("Build date: %s\n", version.BuildDate)
			cmd.Printf("Go version: %s\n", version.GoVersion)
		},
	}
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
