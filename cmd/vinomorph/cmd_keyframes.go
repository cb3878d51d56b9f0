package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vinomorph/internal/display"
	"vinomorph/pkg/morphospace"
)

var flagKeyframeCount int

var keyframesCmd = &cobra.Command{
	Use:   "keyframes <preset-id>",
	Short: "Extract evenly spaced keyframes from a preset's sequence",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeyframes,
}

func init() {
	keyframesCmd.Flags().IntVar(&flagKeyframeCount, "count", 8, "number of keyframes to extract")
	keyframesCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "render tables as Markdown")
}

func runKeyframes(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	steps, err := reg.RunPreset(args[0])
	if err != nil {
		return err
	}
	frames, err := morphospace.ExtractKeyframes(steps, flagKeyframeCount)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), display.Sequence(frames, outputMode()))
	return nil
}
