package config

// Config represents the assetbake.yaml project file.
type Config struct {
	Version int    `yaml:"version"`
	Tools   Tools  `yaml:"tools,omitempty"`
	Tasks   []Task `yaml:"tasks"`
}

// Tools holds the paths of the external compiler executables.
// Empty fields fall back to looking the tool up on PATH by name.
type Tools struct {
	Matc     string `yaml:"matc,omitempty"`
	Cmgen    string `yaml:"cmgen,omitempty"`
	Filamesh string `yaml:"filamesh,omitempty"`
}

// Task declares one asset-compilation task.
type Task struct {
	// Name identifies the task in the state file and CLI output.
	// Defaults to Kind when omitted.
	Name string `yaml:"name,omitempty"`

	// Kind selects the binding: "material", "ibl", or "mesh".
	Kind string `yaml:"kind"`

	// Input is the input root — a single file or a directory.
	Input string `yaml:"input"`

	// Pattern is an optional glob applied to paths under a directory
	// input, e.g. "**/*.mat". Ignored for single-file inputs.
	Pattern string `yaml:"pattern,omitempty"`

	// Output is the directory the task's artifacts are written to.
	Output string `yaml:"output"`
}

// ResolvedName returns the task's effective name.
func (t Task) ResolvedName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Kind
}
