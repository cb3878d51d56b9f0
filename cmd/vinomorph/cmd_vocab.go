package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vinomorph/internal/display"
	"vinomorph/pkg/morphospace"
)

var (
	flagVocabIntensity string
	flagVocabEmphasis  string
)

var vocabCmd = &cobra.Command{
	Use:   "vocab <archetype-id>",
	Short: "Print an archetype's weighted descriptor bundle",
	Args:  cobra.ExactArgs(1),
	RunE:  runVocab,
}

func init() {
	vocabCmd.Flags().StringVar(&flagVocabIntensity, "intensity", "moderate", "keyword weight scale (subtle, moderate, dramatic)")
	vocabCmd.Flags().StringVar(&flagVocabEmphasis, "emphasis", "none", "keyword group to boost (none, color, texture, structure, atmosphere)")
	vocabCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "render tables as Markdown")
}

func runVocab(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	intensity, err := morphospace.ParseIntensity(flagVocabIntensity)
	if err != nil {
		return err
	}
	emphasis, err := morphospace.ParseEmphasis(flagVocabEmphasis)
	if err != nil {
		return err
	}

	res, err := reg.Vocabulary(args[0], intensity, emphasis)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), display.Vocabulary(res, outputMode()))
	return nil
}
