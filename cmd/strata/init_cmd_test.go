package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_ScaffoldsProject(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	_, stderr, err := runCommand(t, dir, "init", dir)
	if err != nil {
		t.Fatalf("init: %v\nstderr: %s", err, stderr)
	}

	for _, sub := range []string{"input_data", "input_templates", "output_data"} {
		info, err := os.Stat(filepath.Join(dir, sub))
		if err != nil || !info.IsDir() {
			t.Errorf("%s not created: %v", sub, err)
		}
	}

	settings := readFile(t, filepath.Join(dir, "strata.yaml"))
	if !strings.Contains(settings, "vars_filename") {
		t.Errorf("settings file missing commented keys:\n%s", settings)
	}
}

func TestInit_IsIdempotent(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	if _, _, err := runCommand(t, dir, "init", dir); err != nil {
		t.Fatalf("first init: %v", err)
	}

	marker := "# marker: keep me\n"
	settingsPath := filepath.Join(dir, "strata.yaml")
	writeTestFile(t, settingsPath, marker)

	_, stderr, err := runCommand(t, dir, "init", dir)
	if err != nil {
		t.Fatalf("second init: %v", err)
	}
	if got := readFile(t, settingsPath); got != marker {
		t.Errorf("settings overwritten without --force:\n%s", got)
	}
	if !strings.Contains(stderr, "Already exists") {
		t.Errorf("stderr missing already-exists notice:\n%s", stderr)
	}
}

func TestInit_ForceOverwritesSettings(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	settingsPath := filepath.Join(dir, "strata.yaml")
	writeTestFile(t, settingsPath, "# marker\n")

	if _, _, err := runCommand(t, dir, "init", dir, "--force"); err != nil {
		t.Fatalf("init --force: %v", err)
	}
	if got := readFile(t, settingsPath); !strings.Contains(got, "vars_filename") {
		t.Errorf("settings not replaced by sample config:\n%s", got)
	}
}
