package cmd

import (
	"fmt"
	"os"

	"assetbake/internal/config"
	"assetbake/internal/state"
	"assetbake/internal/task"
	"assetbake/internal/toolrun"
)

// loadConfig reads and validates the config file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", configPath, err)
	}
	return cfg, nil
}

// loadState reads the state file if it exists. Returns an empty state
// file if missing — individual tasks then rebuild fully.
func loadState() (*state.File, error) {
	sf, err := state.Load(statePath)
	if os.IsNotExist(err) {
		return &state.File{Version: 1}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading state %s: %w", statePath, err)
	}
	return sf, nil
}

// saveState writes the state file atomically.
func saveState(sf *state.File) error {
	return state.Save(statePath, sf)
}

// selectTasks filters the configured tasks by name. Empty names selects
// all tasks.
func selectTasks(cfg *config.Config, names []string) ([]config.Task, error) {
	if len(names) == 0 {
		return cfg.Tasks, nil
	}

	byName := make(map[string]config.Task)
	for _, t := range cfg.Tasks {
		byName[t.ResolvedName()] = t
	}

	selected := make([]config.Task, 0, len(names))
	for _, name := range names {
		t, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("task '%s' not found in config", name)
		}
		selected = append(selected, t)
	}
	return selected, nil
}

// buildTask resolves a configured task into an engine task.
func buildTask(cfg *config.Config, tc config.Task, jobs int, sink toolrun.LogSink) (task.Task, error) {
	binding, err := task.ForKind(tc.Kind)
	if err != nil {
		return task.Task{}, err
	}

	tool, err := cfg.ToolPath(tc.Kind)
	if err != nil {
		return task.Task{}, err
	}

	return task.Task{
		Name:      tc.ResolvedName(),
		Binding:   binding,
		ToolPath:  tool,
		Input:     tc.Input,
		Pattern:   tc.Pattern,
		OutputDir: tc.Output,
		Jobs:      jobs,
		Sink:      sink,
	}, nil
}

// toolSink returns the log sink for tool output: discarded when quiet,
// otherwise streamed to the process's own stdout/stderr.
func toolSink(name string) toolrun.LogSink {
	if quiet {
		return toolrun.Discard
	}
	return &toolrun.StdSink{Out: os.Stdout, Err: os.Stderr, Name: name}
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		fmt.Printf(format+"\n", args...)
	}
}

// detail prints a line only in verbose mode.
func detail(format string, args ...any) {
	if verbose {
		fmt.Printf("  "+format+"\n", args...)
	}
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
