package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/promq-io/promq/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage client configuration",
		Long:  `Show or change the persisted client configuration in ~/.promq/config.yaml.`,
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSetServerCmd())

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := config.NewLoader()

			cfg, err := loader.Load()
			if err != nil {
				return err
			}

			// Credentials never reach the terminal.
			if cfg.Auth.Password != "" {
				cfg.Auth.Password = "<redacted>"
			}
			if cfg.Auth.Token != "" {
				cfg.Auth.Token = "<redacted>"
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}

			cmd.Printf("# %s\n%s", loader.Path(), data)
			return nil
		},
	}
}

func newConfigSetServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-server <url>",
		Short: "Set the server URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := config.NewLoader()

			cfg, err := loader.Load()
			if err != nil {
				return err
			}

			cfg.ServerURL = args[0]
			if err := config.Validate(cfg); err != nil {
				return err
			}

			if err := loader.Save(cfg); err != nil {
				return err
			}

			cmd.Printf("Server set to %s\n", cfg.ServerURL)
			return nil
		},
	}
}
