package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/strata-tools/strata/internal/config"
	"github.com/strata-tools/strata/internal/log"
	"github.com/strata-tools/strata/internal/output"
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// newRootCmd builds the full command tree. Configuration is loaded after
// flag parsing and carried in the command context, so every invocation
// (including tests) gets an isolated configuration.
func newRootCmd() *cobra.Command {
	var (
		project string
		verbose bool
		quiet   bool
	)

	root := &cobra.Command{
		Use:   "strata",
		Short: "Layered YAML variable resolution and template rendering",
		Long: `strata renders text files from templates and layered YAML variables.

Variables for each target file are built by deep-merging the vars.yaml
files found along the directory path from the input-tree root down to the
target, with the target file itself as the final overriding layer. Layers
can delete keys, remove and append sequence items, and delete nested keys
by dot path.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2, // Enable typo suggestions
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Help and completion work without a valid project.
			if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
				return nil
			}

			ctx := cmd.Context()
			ctx = log.WithLogger(ctx, log.New(cmd.ErrOrStderr(), verbose, quiet))
			ctx = output.WithPrinter(ctx, cmd.OutOrStdout())

			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			cfg, err := config.Load(workDir, project)
			if err != nil {
				return err
			}
			ctx = config.WithConfig(ctx, &cfg)

			cmd.SetContext(ctx)
			return nil
		},
		// Run is not set - shows help when no subcommand provided
	}

	root.PersistentFlags().StringVarP(&project, "project", "p", "", "Project directory (overrides base_dir from strata.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show per-layer merge detail")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all progress output")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	root.Version = versionString()
	root.SetVersionTemplate("{{.Version}}\n")

	root.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	root.AddCommand(newRenderCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newVarsCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newConfigCmd())

	return root
}

// Execute runs the CLI with signal-aware context and process exit codes.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'strata -h' for help")
		os.Exit(1)
	}
}
