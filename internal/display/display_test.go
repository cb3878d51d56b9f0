package display_test

import (
	"strings"
	"testing"

	"vinomorph/adapters/cellar"
	"vinomorph/internal/display"
	"vinomorph/pkg/morphospace"
)

func loadRegistry(t *testing.T) *morphospace.Registry {
	t.Helper()
	reg, err := cellar.Load()
	if err != nil {
		t.Fatalf("cellar.Load: %v", err)
	}
	return reg
}

func TestASCII_BasicTable(t *testing.T) {
	tb := display.NewTable(display.ASCII)
	tb.Header("ID", "Distance")
	tb.Row("riesling_crystal", 0.1234)
	tb.Row("napa_monument", 1.1758)
	out := tb.String()

	if !strings.Contains(out, "riesling_crystal") {
		t.Errorf("expected 'riesling_crystal' in output:\n%s", out)
	}
	// ASCII uses box-drawing characters from StyleLight
	if !strings.Contains(out, "───") {
		t.Errorf("expected box-drawing characters in ASCII output:\n%s", out)
	}
}

func TestMarkdown_BasicTable(t *testing.T) {
	tb := display.NewTable(display.Markdown)
	tb.Header("Step", "Blend")
	tb.Row(0, "0.0000")
	tb.Row(6, "1.0000")
	out := tb.String()

	if !strings.Contains(out, "| Step") {
		t.Errorf("expected markdown header with '| Step':\n%s", out)
	}
	if !strings.Contains(out, "---") {
		t.Errorf("expected markdown separator '---':\n%s", out)
	}
}

func TestCoord(t *testing.T) {
	if got := display.Coord(0.123456); got != "0.1235" {
		t.Errorf("Coord(0.123456) = %q, want 0.1235", got)
	}
	if got := display.Coord(1); got != "1.0000" {
		t.Errorf("Coord(1) = %q, want 1.0000", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := display.Truncate("abcdefgh", 5); got != "ab..." {
		t.Errorf("Truncate = %q, want ab...", got)
	}
	if got := display.Truncate("abc", 5); got != "abc" {
		t.Errorf("Truncate = %q, want abc", got)
	}
}

func TestTrajectoryTable(t *testing.T) {
	reg := loadRegistry(t)
	a, err := reg.State("young_burgundy")
	if err != nil {
		t.Fatal(err)
	}
	b, err := reg.State("aged_barolo")
	if err != nil {
		t.Fatal(err)
	}
	traj, err := reg.Trajectory(a, b, 4)
	if err != nil {
		t.Fatal(err)
	}

	// Markdown mode keeps header/footer case intact (ASCII StyleLight
	// uppercases them).
	out := display.Trajectory(traj, display.Markdown)
	for _, axis := range morphospace.Axes() {
		if !strings.Contains(out, string(axis)) {
			t.Errorf("expected axis header %q in output:\n%s", axis, out)
		}
	}
	if !strings.Contains(out, "dominant: "+string(traj.DominantAxis)) {
		t.Errorf("expected dominant-axis footer in output:\n%s", out)
	}
}

func TestSequenceTable(t *testing.T) {
	reg := loadRegistry(t)
	steps, err := reg.RunPreset("structure_toggle")
	if err != nil {
		t.Fatal(err)
	}

	out := display.Sequence(steps, display.Markdown)
	if !strings.Contains(out, "blend") {
		t.Errorf("expected 'blend' header in output:\n%s", out)
	}
}

func TestRegistryTables(t *testing.T) {
	reg := loadRegistry(t)

	states := display.States(reg, display.ASCII)
	if !strings.Contains(states, "mosel_riesling") {
		t.Errorf("expected 'mosel_riesling' in states table:\n%s", states)
	}

	archetypes := display.Archetypes(reg, display.ASCII)
	if !strings.Contains(archetypes, "riesling_crystal") {
		t.Errorf("expected 'riesling_crystal' in archetypes table:\n%s", archetypes)
	}

	presets := display.Presets(reg, display.ASCII)
	if !strings.Contains(presets, "structure_toggle") || !strings.Contains(presets, "60") {
		t.Errorf("expected structure_toggle with 60 total steps:\n%s", presets)
	}
}

func TestVocabularyTable(t *testing.T) {
	reg := loadRegistry(t)
	res, err := reg.Vocabulary("riesling_crystal", morphospace.IntensityModerate, morphospace.EmphasisColor)
	if err != nil {
		t.Fatal(err)
	}

	out := display.Vocabulary(res, display.Markdown)
	if !strings.Contains(out, "riesling_crystal") {
		t.Errorf("expected archetype id footer in output:\n%s", out)
	}
	if !strings.Contains(out, "1.50") {
		t.Errorf("expected boosted weight 1.50 in output:\n%s", out)
	}
}
