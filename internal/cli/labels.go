package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/promq-io/promq/internal/cli/helpers"
	"github.com/promq-io/promq/internal/render"
)

func newLabelsCmd() *cobra.Command {
	var (
		winFlags helpers.WindowFlags
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "labels [<label-name>]",
		Short: "List label names, or the values of one label",
		Long: `List all label names known to the server, or the values of one label.

Examples:
  promq labels                      # All label names
  promq labels job                  # Values of the job label
  promq labels job --start 1d       # Values seen in the last day
  promq labels --json               # JSON array
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now().UTC()

			win, err := winFlags.Window(now)
			if err != nil {
				return err
			}

			client, _, err := helpers.APIClient(serverFlag, verboseFlag)
			if err != nil {
				return err
			}

			var rows []render.Row
			var summary string
			if len(args) == 0 {
				names, err := client.LabelNames(cmd.Context(), win.Start, win.End)
				if err != nil {
					return err
				}
				rows = render.NormalizeStrings(names)
				summary = fmt.Sprintf("Total: %d labels", len(rows))
			} else {
				values, err := client.LabelValues(cmd.Context(), args[0], win.Start, win.End)
				if err != nil {
					return err
				}
				rows = render.NormalizeStrings(values)
				summary = fmt.Sprintf("Total: %d values for %q", len(rows), args[0])
			}

			if jsonOut {
				out, err := render.JSON(render.Values(rows))
				if err != nil {
					return err
				}
				cmd.Println(out)
				return nil
			}

			cmd.Println(render.List(rows, summary))
			return nil
		},
	}

	winFlags.AddFlags(cmd.Flags())
	helpers.AddJSONFlag(cmd, &jsonOut)

	return cmd
}
