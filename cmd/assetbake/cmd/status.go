package cmd

import (
	"assetbake/internal/scan"
	"assetbake/internal/task"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status [task...]",
	Short: "Show what a build would do without running tools",
	Long: `Computes the delta between the current inputs and the recorded state for
each task and prints what 'build' would compile, skip, and remove. No
files are written or deleted and no tools are invoked.`,
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

		for _, tc := range tasks {
			name := tc.ResolvedName()

			current, err := scan.Enumerate(tc.Input, tc.Pattern)
			if err != nil {
				return err
			}

			prev, hasPrev := sf.Task(name)
			if !hasPrev {
				info("%s: no recorded state — full rebuild, %d input(s) to compile", name, len(current))
			}

			d := task.ComputeDelta(current, prev)
			for _, rel := range d.Changed {
				info("  compile  %s", rel)
			}
			for _, rel := range d.Removed {
				info("  remove   %s", rel)
			}
			for _, rel := range d.Unchanged {
				detail("skip     %s", rel)
			}

			info("%s: %d to compile, %d up to date, %d to remove.",
				name, len(d.Changed), len(d.Unchanged), len(d.Removed))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
