package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const exampleConfig = `version: 1
tools:
  matc: tools/matc
  cmgen: tools/cmgen
tasks:
  - kind: material
    input: assets/materials
    pattern: "**/*.mat"
    output: build/materials
  - kind: ibl
    input: assets/env
    pattern: "*.hdr"
    output: build/env
  - name: meshes
    kind: mesh
    input: assets/meshes
    pattern: "**/*.obj"
    output: build/meshes
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "assetbake.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadValidConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, exampleConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Tasks) != 3 {
		t.Fatalf("tasks = %d, want 3", len(cfg.Tasks))
	}
	if cfg.Tools.Matc != "tools/matc" {
		t.Errorf("matc = %q, want tools/matc", cfg.Tools.Matc)
	}
	if got := cfg.Tasks[2].ResolvedName(); got != "meshes" {
		t.Errorf("task name = %q, want meshes", got)
	}
	if got := cfg.Tasks[0].ResolvedName(); got != "material" {
		t.Errorf("default task name = %q, want material", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/assetbake.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadUnknownKind(t *testing.T) {
	_, err := Load(writeConfig(t, `version: 1
tasks:
  - kind: texture
    input: in
    output: out
`))
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if !strings.Contains(err.Error(), "unknown kind 'texture'") {
		t.Errorf("error should name the kind, got: %v", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := &Config{
		Version: 2,
		Tasks: []Task{
			{Kind: "material", Input: "a", Output: "o"},
			{Kind: "material", Input: "b", Output: "o2"},
			{Kind: "mesh"},
		},
	}

	errs := Validate(cfg)
	joined := strings.Join(errs, "\n")
	for _, want := range []string{"version 2", "duplicate task name 'material'", "'input' is required", "'output' is required"} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing %q in validation errors:\n%s", want, joined)
		}
	}
}

func TestToolPathResolution(t *testing.T) {
	cfg := &Config{Tools: Tools{Matc: "custom/matc"}}

	got, err := cfg.ToolPath("material")
	if err != nil {
		t.Fatal(err)
	}
	if got != "custom/matc" {
		t.Errorf("configured path = %q, want custom/matc", got)
	}

	// Unset tools fall back to the bare name for PATH lookup.
	got, err = cfg.ToolPath("mesh")
	if err != nil {
		t.Fatal(err)
	}
	if got != "filamesh" {
		t.Errorf("fallback = %q, want filamesh", got)
	}

	// Environment wins over the configured path.
	t.Setenv(EnvMatc, "/opt/filament/bin/matc")
	got, err = cfg.ToolPath("material")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/opt/filament/bin/matc" {
		t.Errorf("env override = %q, want /opt/filament/bin/matc", got)
	}
}

func TestToolPathUnknownKind(t *testing.T) {
	cfg := &Config{}
	if _, err := cfg.ToolPath("texture"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
