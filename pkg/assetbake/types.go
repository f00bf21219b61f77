package assetbake

// InputAction represents an action taken on a single input during a task run.
type InputAction struct {
	Path   string
	Action string // "compiled", "skipped", "removed"
}

// InputError represents a failure associated with a specific input file.
// Stderr holds the tail of the external tool's error stream, when one was
// captured, so a failure can be diagnosed without re-running the task.
type InputError struct {
	Path   string
	Stderr string
	Err    error
}

func (e InputError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e InputError) Unwrap() error {
	return e.Err
}

// Result holds the outcome of one task run.
type Result struct {
	Task     string
	Compiled []InputAction
	Skipped  []InputAction
	Removed  []InputAction
	Errors   []InputError
}

// Failed reports whether any input in the run failed.
func (r *Result) Failed() bool {
	return len(r.Errors) > 0
}
