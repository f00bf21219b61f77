package task

import (
	"fmt"
	"os"
	"path/filepath"
)

// CleanOutputs deletes every artifact in the task's output directory
// matching the binding's output glob. Used for the full rebuild when no
// prior state exists, and by the clean command, so artifacts from an
// earlier unrelated configuration never linger.
func CleanOutputs(t Task) error {
	if _, err := os.Stat(t.OutputDir); os.IsNotExist(err) {
		return nil
	}

	if t.Binding.DirOutputs {
		entries, err := os.ReadDir(t.OutputDir)
		if err != nil {
			return fmt.Errorf("reading output dir %s: %w", t.OutputDir, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			path := filepath.Join(t.OutputDir, entry.Name())
			if err := os.RemoveAll(path); err != nil {
				return fmt.Errorf("removing %s: %w", path, err)
			}
		}
		return nil
	}

	return filepath.Walk(t.OutputDir, func(path string, fi os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if fi.IsDir() {
			return nil
		}
		ok, matchErr := filepath.Match(t.Binding.OutputGlob, fi.Name())
		if matchErr != nil {
			return fmt.Errorf("matching output glob %q: %w", t.Binding.OutputGlob, matchErr)
		}
		if !ok {
			return nil
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("removing %s: %w", path, err)
		}
		return nil
	})
}
