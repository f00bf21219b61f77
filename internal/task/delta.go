package task

import (
	"sort"

	"assetbake/internal/state"
)

// Delta is the per-run difference between the current input set and the
// previous snapshot. It is computed once per run, drives the per-input
// actions, and is never persisted.
type Delta struct {
	// Changed lists inputs that are new or whose fingerprint differs,
	// relative to the input root.
	Changed []string

	// Unchanged lists inputs whose fingerprint matches the snapshot.
	Unchanged []string

	// Removed lists inputs present in the snapshot but no longer on disk.
	Removed []string
}

// ComputeDelta diffs the current input set against the previous task
// state. Slices are sorted for deterministic output.
func ComputeDelta(current map[string]string, prev state.TaskState) Delta {
	var d Delta

	for rel, hash := range current {
		if fh, ok := prev.Files[rel]; ok && fh.SHA256 == hash {
			d.Unchanged = append(d.Unchanged, rel)
		} else {
			d.Changed = append(d.Changed, rel)
		}
	}

	for rel := range prev.Files {
		if _, ok := current[rel]; !ok {
			d.Removed = append(d.Removed, rel)
		}
	}

	sort.Strings(d.Changed)
	sort.Strings(d.Unchanged)
	sort.Strings(d.Removed)
	return d
}
