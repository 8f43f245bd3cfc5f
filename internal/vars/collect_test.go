package vars

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestCollect_LayersOrderedRootFirst(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "vars.yaml"), "level: root\n")
	writeFile(t, filepath.Join(root, "cisco_ios", "vars.yaml"), "level: vendor\n")
	writeFile(t, filepath.Join(root, "cisco_ios", "router", "vars.yaml"), "level: role\n")
	writeFile(t, filepath.Join(root, "cisco_ios", "router", "new_york.yaml"), "level: target\n")

	c := Collector{Root: root, VarsFilename: "vars.yaml"}
	layers, err := c.Collect(filepath.Join("cisco_ios", "router", "new_york.yaml"))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	var got []string
	for _, l := range layers {
		got = append(got, l.Data["level"].(string))
	}
	want := []string{"root", "vendor", "role", "target"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("layer order = %v, want %v", got, want)
	}
}

func TestCollect_MissingOverridesContributeNothing(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "cisco_ios", "vars.yaml"), "level: vendor\n")
	writeFile(t, filepath.Join(root, "cisco_ios", "router", "new_york.yaml"), "level: target\n")

	c := Collector{Root: root, VarsFilename: "vars.yaml"}
	layers, err := c.Collect(filepath.Join("cisco_ios", "router", "new_york.yaml"))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if len(layers) != 2 {
		t.Fatalf("len(layers) = %d, want 2 (vendor + target)", len(layers))
	}
}

func TestCollect_EmptyTargetStillContributes(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "juniper", "empty.yaml"), "")

	c := Collector{Root: root, VarsFilename: "vars.yaml"}
	layers, err := c.Collect(filepath.Join("juniper", "empty.yaml"))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	// The target's own (empty) mapping is always the final layer.
	if len(layers) != 1 {
		t.Fatalf("len(layers) = %d, want 1", len(layers))
	}
	if len(layers[0].Data) != 0 {
		t.Errorf("target layer = %v, want empty mapping", layers[0].Data)
	}
}

func TestCollect_TargetInRootDirectory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "vars.yaml"), "a: 1\n")
	writeFile(t, filepath.Join(root, "top.yaml"), "b: 2\n")

	c := Collector{Root: root, VarsFilename: "vars.yaml"}
	layers, err := c.Collect("top.yaml")
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	// Root vars once, target once.
	if len(layers) != 2 {
		t.Fatalf("len(layers) = %d, want 2", len(layers))
	}
}

func TestCollect_MalformedOverrideFails(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "cisco_ios", "vars.yaml"), "- not\n- a mapping\n")
	writeFile(t, filepath.Join(root, "cisco_ios", "gw.yaml"), "a: 1\n")

	c := Collector{Root: root, VarsFilename: "vars.yaml"}
	if _, err := c.Collect(filepath.Join("cisco_ios", "gw.yaml")); err == nil {
		t.Fatal("Collect() error = nil, want parse error for malformed override")
	}
}

func TestAncestorDirs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rel  string
		want []string
	}{
		{"top.yaml", []string{""}},
		{filepath.Join("a", "t.yaml"), []string{"", "a"}},
		{filepath.Join("a", "b", "c", "t.yaml"), []string{"", "a", filepath.Join("a", "b"), filepath.Join("a", "b", "c")}},
	}

	for _, tt := range tests {
		got := ancestorDirs(tt.rel)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ancestorDirs(%q) = %v, want %v", tt.rel, got, tt.want)
		}
	}
}

func TestTargetType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rel  string
		want string
	}{
		{filepath.Join("cisco_ios", "router", "gw.yaml"), "cisco_ios"},
		{filepath.Join("juniper", "fw.yaml"), "juniper"},
		{"orphan.yaml", "orphan.yaml"},
	}

	for _, tt := range tests {
		if got := TargetType(tt.rel); got != tt.want {
			t.Errorf("TargetType(%q) = %q, want %q", tt.rel, got, tt.want)
		}
	}
}
