package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vinomorph/internal/display"
)

var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "List the canonical states, archetype anchors, and presets",
	Args:  cobra.NoArgs,
	RunE:  runStates,
}

func init() {
	statesCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "render tables as Markdown")
}

func runStates(cmd *cobra.Command, _ []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	mode := outputMode()
	fmt.Fprintln(out, "Canonical states:")
	fmt.Fprintln(out, display.States(reg, mode))
	fmt.Fprintln(out, "Archetype anchors:")
	fmt.Fprintln(out, display.Archetypes(reg, mode))
	fmt.Fprintln(out, "Presets:")
	fmt.Fprintln(out, display.Presets(reg, mode))
	return nil
}
