package vars

// Resolver runs a target's full resolution: collect the layer sequence,
// fold it, inject derived variables. Each call reads the override files
// fresh from disk; nothing is cached across targets or runs, so resolvers
// for different targets share no state.
type Resolver struct {
	Root             string // absolute path of the input tree
	VarsFilename     string // override file basename, e.g. "vars.yaml"
	FilenameVariable string // dot path set from the target filename, empty to disable
}

// Resolve produces the finalized mapping for one target, identified by its
// path relative to the input tree.
func (r Resolver) Resolve(targetRel string) (map[string]any, error) {
	collector := Collector{Root: r.Root, VarsFilename: r.VarsFilename}
	layers, err := collector.Collect(targetRel)
	if err != nil {
		return nil, err
	}

	resolved, err := Merge(layers)
	if err != nil {
		return nil, err
	}

	Finalize(resolved, targetRel, r.FilenameVariable)
	return resolved, nil
}
