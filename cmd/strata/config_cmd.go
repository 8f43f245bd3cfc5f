package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/strata-tools/strata/internal/config"
	"github.com/strata-tools/strata/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage settings",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Inspect the effective strata settings.

Settings come from strata.yaml in the working directory, overridden by
strata.yaml in the project directory, overridden by flags.`,
		Example: `  strata config show          # Effective settings as YAML
  strata config show --json   # Effective settings as JSON`,
	}

	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}
			return out.YAML(cfg)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
