package vars

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Layer is one mapping of override values read from a single file.
// Layers are treated as immutable once loaded; the merge never aliases
// their contents.
type Layer struct {
	Source string // path the layer was read from, for error reporting
	Data   map[string]any
}

// LoadLayer reads and parses one layer file.
// A missing file is not an error: it returns ok=false. A file that exists
// but does not parse into a mapping (scalar, sequence, or invalid YAML) is
// a configuration error reported with the file path.
func LoadLayer(path string) (Layer, bool, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Layer{}, false, nil
	}
	if err != nil {
		return Layer{}, false, fmt.Errorf("read vars file: %w", err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Layer{}, false, fmt.Errorf("parse %s: %w", path, err)
	}

	// An empty file unmarshals to nil; treat it as an empty mapping so the
	// layer still participates in the sequence.
	if data == nil {
		data = map[string]any{}
	}

	return Layer{Source: path, Data: data}, true, nil
}
