package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vinomorph/internal/display"
)

var nearestCmd = &cobra.Command{
	Use:   "nearest <state-id>",
	Short: "Classify a canonical state against the archetype anchors",
	Args:  cobra.ExactArgs(1),
	RunE:  runNearest,
}

func runNearest(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	s, err := reg.State(args[0])
	if err != nil {
		return err
	}

	id, dist := reg.Nearest(s)
	a, err := reg.Archetype(id)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) at distance %s\n", id, a.Label, display.Coord(dist))
	return nil
}
