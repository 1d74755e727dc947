package cli

import (
	"github.com/spf13/cobra"

	"github.com/promq-io/promq/internal/cli/helpers"
	"github.com/promq-io/promq/internal/promapi"
	"github.com/promq-io/promq/internal/render"
)

func newTargetsCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "targets",
		Short: "Show active scrape targets",
		Long: `Show the scrape targets the server is currently monitoring, with
their health and last scrape error if any.

Examples:
  promq targets
  promq targets --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := helpers.APIClient(serverFlag, verboseFlag)
			if err != nil {
				return err
			}

			targets, err := client.Targets(cmd.Context())
			if err != nil {
				return err
			}

			active := targets.ActiveTargets
			if active == nil {
				active = []promapi.Target{}
			}

			if jsonOut {
				out, err := render.JSON(active)
				if err != nil {
					return err
				}
				cmd.Println(out)
				return nil
			}

			cmd.Println(render.TargetsTable(active))
			return nil
		},
	}

	helpers.AddJSONFlag(cmd, &jsonOut)

	return cmd
}
