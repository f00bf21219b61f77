// Package task implements the incremental asset-compilation engine and
// its three bindings.
package task

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"assetbake/internal/scan"
	"assetbake/internal/state"
	"assetbake/internal/toolrun"
	"assetbake/pkg/assetbake"
)

// Task is a fully resolved unit of work for one engine run. Immutable
// once constructed; set once per build invocation.
type Task struct {
	Name      string
	Binding   Binding
	ToolPath  string
	Input     string // input root: a single file or a directory
	Pattern   string // optional glob for directory inputs
	OutputDir string

	// Jobs is the number of inputs compiled concurrently. Values below 1
	// mean serial execution.
	Jobs int

	// Sink receives tool output. Nil discards it.
	Sink toolrun.LogSink
}

// Engine drives incremental task runs.
type Engine struct {
	Runner *toolrun.Runner
}

// Run executes one task incrementally against the previous state.
//
// A nil prev signals "no prior state" and forces a full rebuild: stale
// artifacts matching the binding's output glob are deleted first, then
// every current input is processed as changed. Otherwise only inputs
// whose fingerprint differs from prev are compiled, and outputs of
// inputs that disappeared are deleted.
//
// A per-input tool failure is recorded in the result and does not abort
// the other inputs. The returned state reflects inputs that succeeded;
// failed inputs keep their previous entry (if any) so the next run
// retries them. A non-nil error is returned only for conditions that
// prevent the whole run (missing tool, unreadable input root).
func (e *Engine) Run(ctx context.Context, t Task, prev *state.TaskState) (state.TaskState, *assetbake.Result, error) {
	runner := e.Runner
	if runner == nil {
		runner = &toolrun.Runner{}
	}

	tool, err := toolrun.Lookup(t.ToolPath)
	if err != nil {
		return state.TaskState{}, nil, err
	}

	if prev == nil {
		if err := CleanOutputs(t); err != nil {
			return state.TaskState{}, nil, err
		}
	}
	if err := os.MkdirAll(t.OutputDir, 0755); err != nil {
		return state.TaskState{}, nil, fmt.Errorf("creating output dir %s: %w", t.OutputDir, err)
	}

	current, err := scan.Enumerate(t.Input, t.Pattern)
	if err != nil {
		return state.TaskState{}, nil, err
	}

	var prevState state.TaskState
	if prev != nil {
		prevState = *prev
	}
	delta := ComputeDelta(current, prevState)

	result := &assetbake.Result{Task: t.Name}
	for _, rel := range delta.Unchanged {
		result.Skipped = append(result.Skipped, assetbake.InputAction{Path: rel, Action: "skipped"})
	}

	// Changed inputs are independent; compile them with Jobs workers and
	// merge the outcome under a mutex.
	jobs := t.Jobs
	if jobs < 1 {
		jobs = 1
	}
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		failed = make(map[string]bool)
		sem    = make(chan struct{}, jobs)
	)
	for _, rel := range delta.Changed {
		wg.Add(1)
		go func(rel string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			inputErr := e.compile(ctx, runner, tool, t, rel)

			mu.Lock()
			defer mu.Unlock()
			if inputErr != nil {
				failed[rel] = true
				result.Errors = append(result.Errors, *inputErr)
				return
			}
			result.Compiled = append(result.Compiled, assetbake.InputAction{Path: rel, Action: "compiled"})
		}(rel)
	}
	wg.Wait()

	// Removed inputs: recompute what their outputs would have been and
	// delete them directly, no tool invocation.
	for _, rel := range delta.Removed {
		if err := removeOutputs(t.Binding, t.Binding.Outputs(rel, t.OutputDir)); err != nil {
			result.Errors = append(result.Errors, assetbake.InputError{Path: rel, Err: err})
			continue
		}
		result.Removed = append(result.Removed, assetbake.InputAction{Path: rel, Action: "removed"})
	}

	// New state: fresh fingerprints for inputs that succeeded or were
	// unchanged; failed inputs retain their previous entry so a later
	// run picks them up again.
	next := state.TaskState{Files: make(map[string]state.FileHash, len(current))}
	for rel, hash := range current {
		if failed[rel] {
			if fh, ok := prevState.Files[rel]; ok {
				next.Files[rel] = fh
			}
			continue
		}
		next.Files[rel] = state.FileHash{SHA256: hash}
	}

	sortActions(result.Compiled)
	sortActions(result.Removed)
	sort.Slice(result.Errors, func(i, j int) bool { return result.Errors[i].Path < result.Errors[j].Path })

	return next, result, nil
}

// compile transforms one input into its outputs. On failure the mapped
// outputs are deleted so no partial artifact survives for that input.
func (e *Engine) compile(ctx context.Context, runner *toolrun.Runner, tool string, t Task, rel string) *assetbake.InputError {
	input := scan.Abs(t.Input, rel)
	outputs := t.Binding.Outputs(rel, t.OutputDir)

	for _, out := range outputs {
		dir := out
		if !t.Binding.DirOutputs {
			dir = filepath.Dir(out)
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &assetbake.InputError{Path: rel, Err: fmt.Errorf("creating %s: %w", dir, err)}
		}
	}

	capture := toolrun.NewCaptureSink(t.Sink, 20)
	for _, args := range t.Binding.Invocations(input, outputs) {
		if err := runner.Invoke(ctx, tool, args, capture); err != nil {
			_ = removeOutputs(t.Binding, outputs)
			return &assetbake.InputError{Path: rel, Stderr: capture.StderrTail(), Err: err}
		}
	}
	return nil
}

func removeOutputs(b Binding, outputs []string) error {
	for _, out := range outputs {
		var err error
		if b.DirOutputs {
			err = os.RemoveAll(out)
		} else {
			err = os.Remove(out)
		}
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", out, err)
		}
	}
	return nil
}

func sortActions(actions []assetbake.InputAction) {
	sort.Slice(actions, func(i, j int) bool { return actions[i].Path < actions[j].Path })
}
