package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/strata-tools/strata/internal/config"
	"github.com/strata-tools/strata/internal/discover"
	"github.com/strata-tools/strata/internal/output"
	"github.com/strata-tools/strata/internal/vars"
)

func newVarsCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "vars <target>",
		Short:   "Show a target's resolved variables",
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `Resolve and print one target's fully merged variable mapping as YAML,
exactly as the template would see it, including the derived target_type
and filename variables.

The target is addressed by its path relative to the input tree; a bare
target name also works when it is unambiguous.`,
		Example: `  strata vars cisco_ios/router/gw01.yaml
  strata vars gw01                # By name, when unique
  strata vars gw01 --copy        # Copy the YAML to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			rel, err := resolveTargetArg(cfg, args[0])
			if err != nil {
				return err
			}

			resolver := vars.Resolver{
				Root:             cfg.InputDataDir(),
				VarsFilename:     cfg.VarsFilename,
				FilenameVariable: cfg.FilenameVariable,
			}
			resolved, err := resolver.Resolve(rel)
			if err != nil {
				return err
			}

			if copyToClipboard {
				dump, err := yaml.Marshal(resolved)
				if err != nil {
					return fmt.Errorf("marshal resolved vars: %w", err)
				}
				if err := clipboard.WriteAll(string(dump)); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				out.Printf("Copied resolved vars for %s to clipboard\n", rel)
				return nil
			}

			return out.YAML(resolved)
		},
	}

	cmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "Copy the resolved YAML to the clipboard")

	return cmd
}

// resolveTargetArg turns the user-supplied target argument into a path
// relative to the input tree. An existing relative path wins; otherwise
// the discovered targets are searched by name or relative path.
func resolveTargetArg(cfg *config.Config, arg string) (string, error) {
	rel := filepath.Clean(arg)
	if _, err := os.Stat(filepath.Join(cfg.InputDataDir(), rel)); err == nil {
		return rel, nil
	}

	targets, err := discover.Targets(cfg.InputDataDir(), cfg.VarsFilename, cfg.SkipPrefix)
	if err != nil {
		return "", fmt.Errorf("discover targets: %w", err)
	}

	var matches []string
	for _, tg := range targets {
		if tg.Name == arg || filepath.ToSlash(tg.Rel) == filepath.ToSlash(rel) {
			matches = append(matches, tg.Rel)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no target named %q in %s", arg, cfg.InputDataDir())
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("target %q is ambiguous, matches: %s", arg, strings.Join(matches, ", "))
	}
}
