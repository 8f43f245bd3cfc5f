package vars

import (
	"path/filepath"
	"strings"
)

// TargetTypeKey is the well-known variable holding the target's type.
// It is structurally derived from the target's location, not user-editable:
// Finalize always overwrites it.
const TargetTypeKey = "target_type"

// Finalize injects the derived variables into a merged mapping, in place.
//
// The target-type variable is set unconditionally. The filename variable
// (a dot-separated path like "hostname" or "person.name", empty to disable)
// is set to the target's base name without extension, but only when the
// merged layers did not already provide it; merged values win over the
// filename-derived default.
func Finalize(resolved map[string]any, targetRel, filenameVariable string) {
	resolved[TargetTypeKey] = TargetType(targetRel)

	if filenameVariable == "" {
		return
	}
	base := filepath.Base(targetRel)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	setIfMissing(resolved, strings.Split(filenameVariable, "."), stem)
}

// setIfMissing descends the dot path, creating intermediate mappings as
// needed, and sets the leaf only when absent. An existing non-mapping value
// along the path blocks the set; it is never overwritten.
func setIfMissing(m map[string]any, path []string, value string) bool {
	key := path[0]
	if len(path) == 1 {
		if _, exists := m[key]; exists {
			return false
		}
		m[key] = value
		return true
	}

	sub, exists := m[key]
	if !exists {
		sub = map[string]any{}
		m[key] = sub
	}
	subMap, ok := sub.(map[string]any)
	if !ok {
		return false
	}
	return setIfMissing(subMap, path[1:], value)
}
