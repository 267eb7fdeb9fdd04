package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/replan/internal/engine/planner"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan [changed files...]",
		Short: "Show the rebuild decision for a set of changed files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := absolutePaths(args)
			if err != nil {
				return err
			}

			decision, err := c.app.Plan(files)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch decision.Outcome {
			case planner.OutcomeExecute:
				fmt.Fprintf(out, "replay %d cached invocation(s):\n", len(decision.Queue))
				for _, job := range decision.Queue {
					fmt.Fprintf(out, "  [%s] %s %s\n", job.Unit, job.Spec.Program, strings.Join(job.Spec.Args, " "))
				}
			case planner.OutcomeFullRebuild:
				fmt.Fprintf(out, "full rebuild required; packages: %s\n", strings.Join(decision.Scope, ", "))
			}
			return nil
		},
	}
}

// absolutePaths resolves CLI arguments to absolute paths; the planner
// requires them.
func absolutePaths(args []string) ([]string, error) {
	files := make([]string, len(args))
	for i, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, err
		}
		files[i] = abs
	}
	return files, nil
}
