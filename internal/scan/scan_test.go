package scan

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestEnumerateDirectoryWithPattern(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.mat", "material a")
	writeFile(t, root, "sub/b.mat", "material b")
	writeFile(t, root, "notes.txt", "not a material")
	writeFile(t, root, ".hidden.mat", "hidden")

	files, err := Enumerate(root, "**/*.mat")
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("files = %d, want 2: %v", len(files), files)
	}
	for _, rel := range []string{"a.mat", "sub/b.mat"} {
		if files[rel] == "" {
			t.Errorf("missing fingerprint for %s", rel)
		}
	}
}

func TestEnumerateNoPatternTakesAllFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "sky.hdr", "env")
	writeFile(t, root, "night.exr", "env")

	files, err := Enumerate(root, "")
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("files = %d, want 2: %v", len(files), files)
	}
}

func TestEnumerateSkipsHiddenDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".git/blob.mat", "not an input")
	writeFile(t, root, "a.mat", "material")

	files, err := Enumerate(root, "**/*.mat")
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("files = %d, want 1: %v", len(files), files)
	}
}

func TestEnumerateSingleFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "sky.hdr", "env")
	path := filepath.Join(root, "sky.hdr")

	files, err := Enumerate(path, "")
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if len(files) != 1 || files["sky.hdr"] == "" {
		t.Fatalf("want single entry keyed by base name, got %v", files)
	}

	if got := Abs(path, "sky.hdr"); got != path {
		t.Errorf("Abs for file root = %q, want %q", got, path)
	}
}

func TestEnumerateMissingRoot(t *testing.T) {
	if _, err := Enumerate(filepath.Join(t.TempDir(), "nope"), ""); err == nil {
		t.Fatal("expected error for missing input root")
	}
}

func TestFingerprintTracksContent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.mat", "v1")

	before, err := Enumerate(root, "")
	if err != nil {
		t.Fatal(err)
	}

	// Same content, same fingerprint.
	again, err := Enumerate(root, "")
	if err != nil {
		t.Fatal(err)
	}
	if before["a.mat"] != again["a.mat"] {
		t.Error("fingerprint changed without a content change")
	}

	writeFile(t, root, "a.mat", "v2")
	after, err := Enumerate(root, "")
	if err != nil {
		t.Fatal(err)
	}
	if before["a.mat"] == after["a.mat"] {
		t.Error("fingerprint did not change with content")
	}
}

func TestAbsDirectoryRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "sub/b.mat", "b")

	want := filepath.Join(root, "sub", "b.mat")
	if got := Abs(root, "sub/b.mat"); got != want {
		t.Errorf("Abs = %q, want %q", got, want)
	}
}
