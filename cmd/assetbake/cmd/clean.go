package cmd

import (
	"fmt"
	"os"

	"assetbake/internal/task"
	"assetbake/internal/toolrun"
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [task...]",
	Short: "Delete build artifacts and the recorded state",
	Long: `Deletes every artifact matching each task's output pattern from its
output directory. With no task names the state file is deleted as well,
so the next build rebuilds everything.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		tasks, err := selectTasks(cfg, args)
		if err != nil {
			return err
		}

		for _, tc := range tasks {
			t, err := buildTask(cfg, tc, 1, toolrun.Discard)
			if err != nil {
				return err
			}
			if err := task.CleanOutputs(t); err != nil {
				return fmt.Errorf("%s: %w", t.Name, err)
			}
			info("%s: cleaned %s", t.Name, t.OutputDir)
		}

		// Partial cleans keep the state file; the cleaned tasks simply
		// rebuild fully on the next run of 'build'.
		if len(args) == 0 {
			if err := os.Remove(statePath); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("removing state %s: %w", statePath, err)
			}
			return nil
		}

		sf, err := loadState()
		if err != nil {
			return err
		}
		for _, tc := range tasks {
			delete(sf.Tasks, tc.ResolvedName())
		}
		return saveState(sf)
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
