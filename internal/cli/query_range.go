package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/promq-io/promq/internal/cli/helpers"
	"github.com/promq-io/promq/internal/render"
)

func newQueryRangeCmd() *cobra.Command {
	var (
		startFlag string
		endFlag   string
		stepFlag  int64
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "query-range <expr>",
		Short: "Run a range query",
		Long: `Run a PromQL query over a time range, evaluated every step seconds.

Each matching series is summarized as its minimum, maximum, and point
count; use --json for the full per-point result.

Examples:
  promq query-range up                                  # Last hour, 60s step
  promq query-range up --start 6h --step 300            # Last 6 hours, 5m step
  promq query-range up --start 2024-01-02T00:00:00Z --end 2024-01-02T06:00:00Z --step 60
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now().UTC()

			params, err := helpers.ValidateRange(startFlag, endFlag, stepFlag, now)
			if err != nil {
				return err
			}
			if params.Warning != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", params.Warning)
			}

			client, _, err := helpers.APIClient(serverFlag, verboseFlag)
			if err != nil {
				return err
			}

			data, err := client.QueryRange(cmd.Context(), args[0], params.Start, params.End, params.Step)
			if err != nil {
				return err
			}

			if jsonOut {
				out, err := render.JSON(data)
				if err != nil {
					return err
				}
				cmd.Println(out)
				return nil
			}

			rows, err := render.NormalizeQueryData(data)
			if err != nil {
				return err
			}

			cmd.Println(render.ResultTable(rows, data.ResultType))
			return nil
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "1h", "Range start (RFC3339 UTC, relative duration, or 'now')")
	cmd.Flags().StringVar(&endFlag, "end", "now", "Range end (RFC3339 UTC, relative duration, or 'now')")
	cmd.Flags().Int64Var(&stepFlag, "step", 60, "Query resolution step in seconds")
	helpers.AddJSONFlag(cmd, &jsonOut)

	return cmd
}
