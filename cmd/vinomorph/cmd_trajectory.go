package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vinomorph/internal/display"
)

var flagTrajectorySteps int

var trajectoryCmd = &cobra.Command{
	Use:   "trajectory <state-a> <state-b>",
	Short: "Sample the interpolation path between two canonical states",
	Args:  cobra.ExactArgs(2),
	RunE:  runTrajectory,
}

func init() {
	trajectoryCmd.Flags().IntVar(&flagTrajectorySteps, "steps", 10, "number of intervals along the path")
	trajectoryCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "render tables as Markdown")
}

func runTrajectory(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	a, err := reg.State(args[0])
	if err != nil {
		return err
	}
	b, err := reg.State(args[1])
	if err != nil {
		return err
	}

	traj, err := reg.Trajectory(a, b, flagTrajectorySteps)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), display.Trajectory(traj, outputMode()))
	return nil
}
