package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"vinomorph/internal/display"
	"vinomorph/internal/logging"
	"vinomorph/pkg/morphospace"
)

var flagSweepParallel int

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run every preset and summarize which archetypes each one visits",
	Args:  cobra.NoArgs,
	RunE:  runSweep,
}

func init() {
	sweepCmd.Flags().IntVar(&flagSweepParallel, "parallel", 4, "number of presets to run concurrently")
	sweepCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "render tables as Markdown")
}

type sweepResult struct {
	presetID   string
	totalSteps int
	archetypes []string
}

func runSweep(cmd *cobra.Command, _ []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	logger := logging.New("sweep")
	ids := reg.PresetIDs()
	results := make([]sweepResult, len(ids))

	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(flagSweepParallel)
	for i, id := range ids {
		g.Go(func() error {
			steps, err := reg.RunPreset(id)
			if err != nil {
				return fmt.Errorf("preset %s: %w", id, err)
			}
			results[i] = sweepResult{
				presetID:   id,
				totalSteps: len(steps),
				archetypes: visitedArchetypes(reg, steps),
			}
			logger.Debug("preset swept", "preset", id, "steps", len(steps))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	tb := display.NewTable(outputMode())
	tb.Header("preset", "steps", "archetypes visited")
	tb.Columns(display.ColumnConfig{Number: 3, Align: display.AlignLeft, MaxWidth: 60})
	for _, r := range results {
		tb.Row(r.presetID, r.totalSteps, strings.Join(r.archetypes, ", "))
	}
	fmt.Fprintln(cmd.OutOrStdout(), tb.String())
	return nil
}

// visitedArchetypes classifies every step and returns the distinct
// archetype ids in first-visit order.
func visitedArchetypes(reg *morphospace.Registry, steps []morphospace.SequenceStep) []string {
	seen := make(map[string]bool)
	var out []string
	for _, st := range steps {
		id, _ := reg.Nearest(st.State)
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

