package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/strata-tools/strata/internal/config"
	"github.com/strata-tools/strata/internal/discover"
	"github.com/strata-tools/strata/internal/log"
	"github.com/strata-tools/strata/internal/output"
	"github.com/strata-tools/strata/internal/ui"
	"github.com/strata-tools/strata/internal/vars"
)

// TargetDisplay holds target info for display
type TargetDisplay struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Rel    string `json:"rel"`
	Path   string `json:"path"`
	Layers int    `json:"layers"`
}

func newListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list [query]",
		Short:   "List discovered targets",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `List the target files discovered in the input tree, with their target
type and the number of variable layers that would apply to each.

An optional query fuzzy-matches against the targets' relative paths.`,
		Example: `  strata list             # All targets
  strata list router       # Fuzzy-filter by path
  strata list --json       # Output as JSON for scripting`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			targets, err := discover.Targets(cfg.InputDataDir(), cfg.VarsFilename, cfg.SkipPrefix)
			if err != nil {
				return fmt.Errorf("discover targets: %w", err)
			}
			if len(args) == 1 {
				targets = filterTargets(targets, args[0])
			}

			l.Debug("listing targets", "count", len(targets))

			collector := vars.Collector{Root: cfg.InputDataDir(), VarsFilename: cfg.VarsFilename}
			display := make([]TargetDisplay, 0, len(targets))
			for _, tg := range targets {
				layers := 0
				if collected, err := collector.Collect(tg.Rel); err == nil {
					layers = len(collected)
				} else {
					l.Errorf("%s: %v", tg.Rel, err)
				}
				display = append(display, TargetDisplay{
					Name:   tg.Name,
					Type:   tg.Type,
					Rel:    tg.Rel,
					Path:   tg.Path,
					Layers: layers,
				})
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(display)
			}

			if len(display) == 0 {
				out.Println("No targets found")
				return nil
			}

			headers := []string{"NAME", "TYPE", "LAYERS", "PATH"}
			var rows [][]string
			for _, d := range display {
				rows = append(rows, []string{d.Name, d.Type, strconv.Itoa(d.Layers), d.Rel})
			}
			out.Print(ui.RenderTable(headers, rows))

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// filterTargets keeps the targets whose relative path fuzzy-matches query,
// best matches first.
func filterTargets(targets []discover.Target, query string) []discover.Target {
	rels := make([]string, len(targets))
	for i, tg := range targets {
		rels[i] = tg.Rel
	}

	var matched []discover.Target
	for _, m := range fuzzy.Find(query, rels) {
		matched = append(matched, targets[m.Index])
	}
	return matched
}
