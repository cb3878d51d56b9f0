package main

import (
	"github.com/spf13/cobra"

	"vinomorph/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagLogLevel  string
	flagLogFormat string
)

var rootCmd = &cobra.Command{
	Use:   "vinomorph",
	Short: "Wine-tasting parameter morphospace engine",
	Long: "Vinomorph maps tasting notes into a five-axis parameter space and\n" +
		"generates interpolations, classifications, and oscillating blend\n" +
		"sequences for downstream visual synthesis.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := logging.ParseLevel(flagLogLevel)
		if err != nil {
			return err
		}
		logging.Init(level, flagLogFormat)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "log format (text, json)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(trajectoryCmd)
	rootCmd.AddCommand(presetCmd)
	rootCmd.AddCommand(keyframesCmd)
	rootCmd.AddCommand(nearestCmd)
	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(statesCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.Version = version
}
