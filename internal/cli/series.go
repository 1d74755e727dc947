package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/promq-io/promq/internal/cli/helpers"
	"github.com/promq-io/promq/internal/render"
)

var errNoMatchers = errors.New(`at least one series matcher is required, e.g. '{job="prometheus"}'`)

func newSeriesCmd() *cobra.Command {
	var (
		winFlags helpers.WindowFlags
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "series <matcher>...",
		Short: "List series matching label selectors",
		Long: `List the time series matching one or more label selectors.

Each series prints as its full label set in the order the server returns
it, e.g. {__name__="up", job="prometheus"}.

Examples:
  promq series 'up'                             # Series of one metric
  promq series '{job="prometheus"}'             # Selector form
  promq series 'up' 'process_start_time_seconds'
  promq series '{job="node"}' --start 1h --end now
`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errNoMatchers
			}

			now := time.Now().UTC()

			win, err := winFlags.Window(now)
			if err != nil {
				return err
			}

			client, _, err := helpers.APIClient(serverFlag, verboseFlag)
			if err != nil {
				return err
			}

			sets, err := client.Series(cmd.Context(), args, win.Start, win.End)
			if err != nil {
				return err
			}

			rows := render.NormalizeSeries(sets)

			if jsonOut {
				out, err := render.JSON(render.LabelSets(rows))
				if err != nil {
					return err
				}
				cmd.Println(out)
				return nil
			}

			cmd.Println(render.List(rows, fmt.Sprintf("Total: %d series", len(rows))))
			return nil
		},
	}

	winFlags.AddFlags(cmd.Flags())
	helpers.AddJSONFlag(cmd, &jsonOut)

	return cmd
}
