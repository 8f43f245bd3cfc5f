package main

import (
	"github.com/spf13/cobra"

	"github.com/strata-tools/strata/internal/config"
)

func newRenderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:     "render",
		Short:   "Resolve variables and render all targets",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Resolve the layered variables for every target in the input tree and
render each one through its target type's template.

For a target input_data/cisco_ios/router/gw01.yaml the template is
input_templates/cisco_ios/base.tmpl and the output is written to
output_data/cisco_ios/router/gw01.txt (extension configurable).

Targets fail independently: a malformed vars file or template only skips
that target, and the command reports the failure count at the end.`,
		Example: `  strata render                  # Render the configured project
  strata render -p projects/lab  # Render a specific project
  strata render --dry-run        # Show what would be written
  strata render --save-vars      # Also dump each resolved mapping as YAML
  strata render --save-vars --vars-dir merged   # Dump into <project>/merged`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			if opts.varsDir != "" {
				cfg.MergedVarsPath = opts.varsDir
			}
			return renderAll(ctx, cfg, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "Resolve and render but write nothing")
	cmd.Flags().BoolVar(&opts.saveVars, "save-vars", false, "Dump each resolved mapping as YAML next to the output")
	cmd.Flags().StringVar(&opts.varsDir, "vars-dir", "", "Directory for merged-vars dumps, relative to the project (overrides merged_vars_path)")

	return cmd
}
