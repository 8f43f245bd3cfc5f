package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/strata-tools/strata/internal/config"
	"github.com/strata-tools/strata/internal/discover"
	"github.com/strata-tools/strata/internal/log"
	"github.com/strata-tools/strata/internal/render"
	"github.com/strata-tools/strata/internal/vars"
)

type renderOptions struct {
	dryRun   bool
	saveVars bool   // in addition to the save_merged_vars setting
	varsDir  string // overrides merged_vars_path for this run
}

// renderAll resolves and renders every discovered target. A failing target
// is reported and skipped; the remaining targets still render. The run as a
// whole fails when any target did.
func renderAll(ctx context.Context, cfg *config.Config, opts renderOptions) error {
	l := log.FromContext(ctx)

	targets, err := discover.Targets(cfg.InputDataDir(), cfg.VarsFilename, cfg.SkipPrefix)
	if err != nil {
		return fmt.Errorf("discover targets: %w", err)
	}
	if len(targets) == 0 {
		l.Printf("No targets found in %s\n", cfg.InputDataDir())
		return nil
	}

	resolver := vars.Resolver{
		Root:             cfg.InputDataDir(),
		VarsFilename:     cfg.VarsFilename,
		FilenameVariable: cfg.FilenameVariable,
	}
	renderer := render.New(cfg.InputTemplatesDir(), cfg.TemplateName)

	failed := 0
	for _, tg := range targets {
		if err := renderOne(ctx, cfg, resolver, renderer, tg, opts); err != nil {
			// One target's failure must not take down the rest of the run.
			l.Errorf("%s: %v", tg.Rel, err)
			failed++
		}
	}

	l.Printf("Rendered %d of %d targets\n", len(targets)-failed, len(targets))
	if failed > 0 {
		return fmt.Errorf("%d of %d targets failed", failed, len(targets))
	}
	return nil
}

func renderOne(ctx context.Context, cfg *config.Config, resolver vars.Resolver, renderer *render.Renderer, tg discover.Target, opts renderOptions) error {
	l := log.FromContext(ctx)
	l.Debug("resolving target", "target", tg.Rel, "type", tg.Type)

	resolved, err := resolver.Resolve(tg.Rel)
	if err != nil {
		return err
	}

	text, err := renderer.Render(tg.Type, resolved)
	if err != nil {
		return err
	}

	outPath := filepath.Join(cfg.OutputDataDir(), trimExt(tg.Rel)+cfg.OutputExt)
	if opts.dryRun {
		l.Printf("Would create: %s\n", outPath)
		return nil
	}

	if err := writeFile(outPath, []byte(text)); err != nil {
		return err
	}
	l.Printf("Created: %s\n", outPath)

	if cfg.SaveMergedVars || opts.saveVars {
		varsPath := filepath.Join(cfg.MergedVarsDir(), trimExt(tg.Rel)+".yaml")
		dump, err := yaml.Marshal(resolved)
		if err != nil {
			return fmt.Errorf("marshal resolved vars: %w", err)
		}
		if err := writeFile(varsPath, dump); err != nil {
			return err
		}
		l.Printf("Created: %s\n", varsPath)
	}

	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// trimExt drops the file extension but keeps the directory part,
// "cisco_ios/router/gw01.yaml" -> "cisco_ios/router/gw01".
func trimExt(rel string) string {
	return strings.TrimSuffix(rel, filepath.Ext(rel))
}
