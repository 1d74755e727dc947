package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/promq-io/promq/internal/cli/helpers"
	"github.com/promq-io/promq/internal/render"
)

func newQueryCmd() *cobra.Command {
	var (
		timeFlag string
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "query <expr>",
		Short: "Run an instant query",
		Long: `Run an instant PromQL query evaluated at a single point in time.

Examples:
  promq query up                                # Evaluate now
  promq query 'rate(http_requests_total[5m])'   # Any PromQL expression
  promq query up --time 1h                      # Evaluate one hour ago
  promq query up --time 2024-01-02T15:04:05Z    # Evaluate at a fixed time
  promq query up --json                         # Raw API result as JSON
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now().UTC()

			ts := now.Unix()
			if timeFlag != "" {
				resolved, err := helpers.ParseTimeExpression(timeFlag, now)
				if err != nil {
					return &helpers.TimeExpressionError{Field: "time", Input: timeFlag}
				}
				ts = resolved.Unix
			}

			client, _, err := helpers.APIClient(serverFlag, verboseFlag)
			if err != nil {
				return err
			}

			data, err := client.Query(cmd.Context(), args[0], ts)
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

	cmd.Flags().StringVar(&timeFlag, "time", "", "Evaluation time (RFC3339 UTC, relative duration, or 'now'; default now)")
	helpers.AddJSONFlag(cmd, &jsonOut)

	return cmd
}
