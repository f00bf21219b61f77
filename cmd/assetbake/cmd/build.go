package cmd

import (
	"fmt"

	"assetbake/internal/task"
	"assetbake/internal/toolrun"
	"github.com/spf13/cobra"
)

var (
	buildJobs    int
	buildRetries uint64
)

var buildCmd = &cobra.Command{
	Use:   "build [task...]",
	Short: "Compile assets that changed since the last build",
	Long: `Runs the configured tasks incrementally. Inputs whose fingerprint matches
the recorded state are skipped; outputs of removed inputs are deleted. A
task with no recorded state rebuilds fully, clearing stale artifacts
first. With task names given, only those tasks run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		sf, err := loadState()
		if err != nil {
			return err
		}

		tasks, err := selectTasks(cfg, args)
		if err != nil {
			return err
		}

		eng := &task.Engine{Runner: &toolrun.Runner{Retries: buildRetries}}

		failed := 0
		for _, tc := range tasks {
			t, err := buildTask(cfg, tc, buildJobs, toolSink(tc.ResolvedName()))
			if err != nil {
				return err
			}

			prevState, hasPrev := sf.Task(t.Name)
			prevPtr := &prevState
			if !hasPrev {
				prevPtr = nil
				info("%s: no recorded state, rebuilding", t.Name)
			}

			next, result, err := eng.Run(cmd.Context(), t, prevPtr)
			if err != nil {
				return fmt.Errorf("%s: %w", t.Name, err)
			}

			for _, a := range result.Compiled {
				info("  %s  %s", a.Action, a.Path)
			}
			for _, a := range result.Removed {
				info("  %s  %s", a.Action, a.Path)
			}
			for _, a := range result.Skipped {
				detail("%s  %s", a.Action, a.Path)
			}
			for _, e := range result.Errors {
				errorf("%s: %s", e.Path, e.Err)
				if e.Stderr != "" {
					errorf("%s", e.Stderr)
				}
			}

			info("%s: %d compiled, %d skipped, %d removed, %d errors.",
				t.Name, len(result.Compiled), len(result.Skipped), len(result.Removed), len(result.Errors))

			// Inputs that succeeded are recorded even when others failed.
			sf.SetTask(t.Name, next)
			failed += len(result.Errors)
		}

		if err := saveState(sf); err != nil {
			return err
		}

		if failed > 0 {
			return fmt.Errorf("%d input(s) failed", failed)
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().IntVar(&buildJobs, "jobs", 1, "number of inputs compiled concurrently per task")
	buildCmd.Flags().Uint64Var(&buildRetries, "retries", 0, "extra attempts when a tool fails to start")
	rootCmd.AddCommand(buildCmd)
}
