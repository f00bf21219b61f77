package state

// File represents the assetbake.state file: the record of inputs and
// fingerprints from the previous build, keyed by task name.
type File struct {
	Version int                  `yaml:"version"`
	Tasks   map[string]TaskState `yaml:"tasks,omitempty"`
}

// TaskState records the input set seen by the last run of one task.
type TaskState struct {
	Files map[string]FileHash `yaml:"files,omitempty"`
}

// FileHash records the content fingerprint of a single input file.
type FileHash struct {
	SHA256 string `yaml:"sha256"`
}

// Task returns the recorded state for a task, and whether any exists.
// A missing entry means the task has never run and must rebuild fully.
func (f *File) Task(name string) (TaskState, bool) {
	ts, ok := f.Tasks[name]
	return ts, ok
}

// SetTask replaces the recorded state for a task.
func (f *File) SetTask(name string, ts TaskState) {
	if f.Tasks == nil {
		f.Tasks = make(map[string]TaskState)
	}
	f.Tasks[name] = ts
}
