package state

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a state file.
// The raw os error is returned for a missing file so callers can treat
// "no prior state" as a full rebuild rather than a failure.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing state file %s: %w", path, err)
	}

	if errs := Validate(&f); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &f, nil
}

// Save writes a state file atomically using a temp file and rename.
func Save(path string, f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing temp state file %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("renaming temp state file to %s: %w", path, err)
	}

	return nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("state file validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a state file for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(f *File) []string {
	var errs []string

	if f.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported version %d — only version 1 is supported", f.Version))
	}

	for name, ts := range f.Tasks {
		for path, fh := range ts.Files {
			if path == "" {
				errs = append(errs, fmt.Sprintf("task '%s': empty input path", name))
			}
			if fh.SHA256 == "" {
				errs = append(errs, fmt.Sprintf("task '%s': input '%s' has no fingerprint", name, path))
			}
		}
	}

	return errs
}
