// Package render turns a resolved variable mapping into text using Go
// templates. Templates live in one subdirectory per target type, each
// holding a single entry template (base.tmpl by default).
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// Renderer loads and executes per-target-type templates. Parsed templates
// are cached for the lifetime of the renderer, so a run with many targets
// of the same type parses each template once.
type Renderer struct {
	dir    string // templates root, one subdirectory per target type
	name   string // entry template basename, e.g. "base.tmpl"
	parsed map[string]*template.Template
}

// New creates a renderer reading templates from dir, using name as the
// entry template inside each target-type subdirectory.
func New(dir, name string) *Renderer {
	return &Renderer{
		dir:    dir,
		name:   name,
		parsed: make(map[string]*template.Template),
	}
}

// Render executes the template for targetType with the resolved mapping.
// Missing template files and template errors are returned with the
// template's path; they are failures for the current target only.
func (r *Renderer) Render(targetType string, resolved map[string]any) (string, error) {
	tmpl, err := r.load(targetType)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, resolved); err != nil {
		return "", fmt.Errorf("render template %s: %w", r.templatePath(targetType), err)
	}
	return out.String(), nil
}

func (r *Renderer) load(targetType string) (*template.Template, error) {
	if tmpl, ok := r.parsed[targetType]; ok {
		return tmpl, nil
	}

	path := r.templatePath(targetType)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load template for target type %q: %w", targetType, err)
	}

	// missingkey=zero keeps templates tolerant of keys that no layer set,
	// instead of failing the whole target.
	tmpl, err := template.New(r.name).Option("missingkey=zero").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", path, err)
	}

	r.parsed[targetType] = tmpl
	return tmpl, nil
}

func (r *Renderer) templatePath(targetType string) string {
	return filepath.Join(r.dir, targetType, r.name)
}
