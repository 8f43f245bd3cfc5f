package vars

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Collector gathers the ordered layer sequence for targets under one input
// tree. The zero value is not usable; populate Root and VarsFilename.
type Collector struct {
	Root         string // absolute path of the input tree
	VarsFilename string // override file basename looked up per directory
}

// Collect returns the layer sequence for the target at targetRel (a path
// relative to the input tree), ordered root-most first with the target file
// itself last. Directories without an override file contribute nothing.
// The returned sequence always has at least one element: the target's own
// mapping, which may be empty.
func (c Collector) Collect(targetRel string) ([]Layer, error) {
	var layers []Layer

	for _, dir := range ancestorDirs(targetRel) {
		layer, ok, err := LoadLayer(filepath.Join(c.Root, dir, c.VarsFilename))
		if err != nil {
			return nil, err
		}
		if ok {
			layers = append(layers, layer)
		}
	}

	// The target itself is always the final, most specific layer. Unlike
	// override files it must exist: it was discovered on disk moments ago.
	target, ok, err := LoadLayer(filepath.Join(c.Root, targetRel))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("target file disappeared: %s", filepath.Join(c.Root, targetRel))
	}
	return append(layers, target), nil
}

// ancestorDirs lists the directories from the input-tree root down to the
// target's own directory, e.g. "a/b/t.yaml" -> ["", "a", "a/b"].
func ancestorDirs(targetRel string) []string {
	dirs := []string{""}
	dir := filepath.ToSlash(filepath.Dir(targetRel))
	if dir == "." {
		return dirs
	}
	parts := strings.Split(dir, "/")
	for i := range parts {
		dirs = append(dirs, filepath.Join(parts[:i+1]...))
	}
	return dirs
}

// TargetType derives the template-selection identifier for a target: the
// name of the top-level directory under the input tree it resides in.
// A target sitting directly in the input-tree root has no containing type
// directory, so its own filename is returned.
func TargetType(targetRel string) string {
	return strings.Split(filepath.ToSlash(targetRel), "/")[0]
}
