package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/strata-tools/strata/internal/config"
	"github.com/strata-tools/strata/internal/log"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "init [dir]",
		Short:   "Scaffold a new project",
		GroupID: GroupConfig,
		Args:    cobra.MaximumNArgs(1),
		Long: `Create the working directories and a commented strata.yaml in the given
project directory (default: the current directory).

Existing directories and settings files are left alone unless --force is
given, so init is safe to re-run.`,
		Example: `  strata init                   # Scaffold the current directory
  strata init projects/lab      # Scaffold a new project directory
  strata init -f                # Overwrite an existing strata.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return initProject(cmd, dir, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing strata.yaml")

	return cmd
}

func initProject(cmd *cobra.Command, dir string, force bool) error {
	l := log.FromContext(cmd.Context())
	defaults := config.Default()

	for _, sub := range []string{
		defaults.InputDataDirname,
		defaults.InputTemplatesDirname,
		defaults.OutputDataDirname,
	} {
		path := filepath.Join(dir, sub)
		if _, err := os.Stat(path); err == nil {
			l.Printf("Already exists: %s\n", path)
			continue
		}
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		l.Printf("Created: %s\n", path)
	}

	settings := filepath.Join(dir, config.Filename)
	if _, err := os.Stat(settings); err == nil && !force {
		l.Printf("Already exists: %s (use -f to overwrite)\n", settings)
		return nil
	}
	if err := os.WriteFile(settings, []byte(config.SampleConfig), 0644); err != nil {
		return fmt.Errorf("write %s: %w", settings, err)
	}
	l.Printf("Created: %s\n", settings)

	return nil
}
