// Package discover walks an input tree and finds the target YAML files to
// resolve and render.
//
// Override files (the configured vars filename) are never targets, and a
// configurable skip prefix excludes directories and files from discovery
// entirely. The prefix applies to entries inside the tree, not to the input
// tree root itself.
package discover

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/strata-tools/strata/internal/vars"
)

// Target is one discovered file to resolve and render.
type Target struct {
	Path string // absolute path on disk
	Rel  string // path relative to the input tree
	Type string // template-selection identifier, see vars.TargetType
	Name string // base name without extension
}

// Targets finds every .yaml/.yml file under root, in deterministic lexical
// walk order, excluding varsFilename files and anything whose base name
// starts with skipPrefix (an empty prefix skips nothing). Skipped
// directories are not descended into.
func Targets(root, varsFilename, skipPrefix string) ([]Target, error) {
	var targets []Target

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipped(d.Name(), skipPrefix) {
				return filepath.SkipDir
			}
			return nil
		}
		if skipped(d.Name(), skipPrefix) {
			return nil
		}
		ext := filepath.Ext(d.Name())
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		if d.Name() == varsFilename {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		targets = append(targets, Target{
			Path: path,
			Rel:  rel,
			Type: vars.TargetType(rel),
			Name: strings.TrimSuffix(d.Name(), ext),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return targets, nil
}

func skipped(name, prefix string) bool {
	return prefix != "" && strings.HasPrefix(name, prefix)
}
