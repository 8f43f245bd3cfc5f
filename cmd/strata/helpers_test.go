package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

// writeTestFile creates path (and parent dirs) with the given content.
func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// setupProject builds a minimal project: one vars hierarchy, one target,
// one template. Returns the project directory.
func setupProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeTestFile(t, filepath.Join(dir, "input_data", "vars.yaml"),
		"abilities:\n  - breathes\n")
	writeTestFile(t, filepath.Join(dir, "input_data", "animals", "vars.yaml"),
		"abilities__append:\n  - produces milk\n")
	writeTestFile(t, filepath.Join(dir, "input_data", "animals", "dolphin.yaml"),
		"species: Delphinus delphis\nabilities__remove:\n  - walks\nabilities__append:\n  - swims\n")
	writeTestFile(t, filepath.Join(dir, "input_templates", "animals", "base.tmpl"),
		"{{.species}} can:{{range .abilities}} {{.}}{{end}}\n")

	return dir
}

// runCommand executes the CLI in-process against the given project.
// Returns stdout, stderr and the execution error.
func runCommand(t *testing.T, project string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append(args, "-p", project))

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
