package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vinomorph/internal/display"
)

var presetCmd = &cobra.Command{
	Use:   "preset <preset-id>",
	Short: "Run a curated oscillation preset and print every step",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreset,
}

func init() {
	presetCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "render tables as Markdown")
}

func runPreset(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	steps, err := reg.RunPreset(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), display.Sequence(steps, outputMode()))
	return nil
}
