package display

import (
	"fmt"

	"vinomorph/pkg/morphospace"
)

// Coord formats a normalized coordinate to the 4-decimal boundary
// precision used everywhere results leave the engine.
func Coord(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

// Truncate shortens s to maxLen characters, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

func stateCells(s morphospace.State) []any {
	cells := make([]any, 0, morphospace.NumAxes)
	for _, axis := range morphospace.Axes() {
		cells = append(cells, Coord(s.Value(axis)))
	}
	return cells
}

func axisHeaders(prefix ...string) []string {
	cols := append([]string{}, prefix...)
	for _, axis := range morphospace.Axes() {
		cols = append(cols, string(axis))
	}
	return cols
}

// Trajectory renders the sampled path with per-sample classification,
// plus a footer carrying the endpoint summaries.
func Trajectory(traj *morphospace.Trajectory, m Mode) string {
	tb := NewTable(m)
	tb.Header(append(axisHeaders("t"), "nearest", "dist")...)
	for _, s := range traj.Samples {
		row := append([]any{Coord(s.T)}, stateCells(s.State)...)
		row = append(row, s.ArchetypeID, Coord(s.Distance))
		tb.Row(row...)
	}
	tb.Footer("total", "", "", "", "", "", "dominant: "+string(traj.DominantAxis), Coord(traj.TotalDistance))
	return tb.String()
}

// Sequence renders oscillation steps: index, phase, blend, and the
// interpolated state per step.
func Sequence(steps []morphospace.SequenceStep, m Mode) string {
	tb := NewTable(m)
	tb.Header(axisHeaders("step", "phase", "blend")...)
	for _, s := range steps {
		row := append([]any{s.Index, Coord(s.Phase), Coord(s.Blend)}, stateCells(s.State)...)
		tb.Row(row...)
	}
	return tb.String()
}

// States renders the registry's canonical states in id order.
func States(reg *morphospace.Registry, m Mode) string {
	tb := NewTable(m)
	tb.Header(axisHeaders("id")...)
	for _, id := range reg.StateIDs() {
		s, err := reg.State(id)
		if err != nil {
			continue
		}
		tb.Row(append([]any{id}, stateCells(s)...)...)
	}
	return tb.String()
}

// Archetypes renders the classification anchors with their labels.
func Archetypes(reg *morphospace.Registry, m Mode) string {
	tb := NewTable(m)
	tb.Header(append(axisHeaders("id"), "label")...)
	tb.Columns(ColumnConfig{Number: morphospace.NumAxes + 2, Align: AlignLeft, MaxWidth: 40})
	for _, id := range reg.ArchetypeIDs() {
		a, err := reg.Archetype(id)
		if err != nil {
			continue
		}
		row := append([]any{id}, stateCells(a.Anchor)...)
		row = append(row, Truncate(a.Label, 40))
		tb.Row(row...)
	}
	return tb.String()
}

// Presets renders the curated oscillations: endpoints, waveform, and
// total step count.
func Presets(reg *morphospace.Registry, m Mode) string {
	tb := NewTable(m)
	tb.Header("id", "state a", "state b", "pattern", "cycles", "steps/cycle", "total")
	for _, id := range reg.PresetIDs() {
		p, err := reg.Preset(id)
		if err != nil {
			continue
		}
		tb.Row(id, p.StateA, p.StateB, p.Pattern.String(), p.Cycles, p.StepsPerCycle, p.Cycles*p.StepsPerCycle)
	}
	return tb.String()
}

// Vocabulary renders an archetype's weighted descriptor bundle.
func Vocabulary(res *morphospace.VocabularyResult, m Mode) string {
	tb := NewTable(m)
	tb.Header("keyword", "weight")
	tb.Columns(ColumnConfig{Number: 2, Align: AlignRight})
	for _, kw := range res.Keywords {
		tb.Row(kw.Keyword, fmt.Sprintf("%.2f", kw.Weight))
	}
	tb.Footer(res.ArchetypeID, "")
	return tb.String()
}
