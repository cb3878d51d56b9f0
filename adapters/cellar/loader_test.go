package cellar_test

import (
	"testing"

	"vinomorph/adapters/cellar"
	"vinomorph/pkg/morphospace"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	reg, err := cellar.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	wantStates := []string{
		"aged_barolo", "chablis_chardonnay", "marlborough_sauvignon",
		"mosel_riesling", "napa_cabernet", "rhone_syrah",
		"rioja_tempranillo", "young_burgundy",
	}
	if diff := cmp.Diff(wantStates, reg.StateIDs()); diff != "" {
		t.Errorf("StateIDs mismatch:\n%s", diff)
	}

	wantArchetypes := []string{
		"amber_relic", "barolo_spire", "burgundy_veil",
		"napa_monument", "rhone_ember", "riesling_crystal",
	}
	if diff := cmp.Diff(wantArchetypes, reg.ArchetypeIDs()); diff != "" {
		t.Errorf("ArchetypeIDs mismatch:\n%s", diff)
	}

	wantPresets := []string{
		"crystal_pulse", "ember_swing", "maturation_wave",
		"structure_toggle", "terroir_drift",
	}
	if diff := cmp.Diff(wantPresets, reg.PresetIDs()); diff != "" {
		t.Errorf("PresetIDs mismatch:\n%s", diff)
	}
}

func TestLoad_CanonicalCoordinates(t *testing.T) {
	reg, err := cellar.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	s, err := reg.State("young_burgundy")
	if err != nil {
		t.Fatalf("State(young_burgundy): %v", err)
	}
	want := map[string]float64{
		"structural_tension":  0.70,
		"chromatic_depth":     0.45,
		"aromatic_complexity": 0.40,
		"textural_weight":     0.40,
		"temporal_maturity":   0.15,
	}
	if diff := cmp.Diff(want, s.Map()); diff != "" {
		t.Errorf("young_burgundy coordinates mismatch:\n%s", diff)
	}
}

func TestLoad_ArchetypeBundles(t *testing.T) {
	reg, err := cellar.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, id := range reg.ArchetypeIDs() {
		a, err := reg.Archetype(id)
		if err != nil {
			t.Fatalf("Archetype(%q): %v", id, err)
		}
		// Bundles carry four two-keyword groups for the emphasis boost.
		if len(a.Keywords) != 8 {
			t.Errorf("archetype %q: %d keywords, want 8", id, len(a.Keywords))
		}
		if len(a.Optics.Palette) != 4 {
			t.Errorf("archetype %q: %d palette colors, want 4", id, len(a.Optics.Palette))
		}
		if a.Optics.Finish == "" || a.Optics.Transparency == "" || a.Optics.Refraction == "" {
			t.Errorf("archetype %q: incomplete optical properties: %+v", id, a.Optics)
		}
	}
}

func TestLoad_PresetsRunnable(t *testing.T) {
	reg, err := cellar.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, id := range reg.PresetIDs() {
		p, err := reg.Preset(id)
		if err != nil {
			t.Fatalf("Preset(%q): %v", id, err)
		}
		seq, err := reg.RunPreset(id)
		if err != nil {
			t.Fatalf("RunPreset(%q): %v", id, err)
		}
		if got, want := len(seq), p.Cycles*p.StepsPerCycle; got != want {
			t.Errorf("preset %q: sequence length %d, want %d", id, got, want)
		}
	}
}

func TestLoad_MoselToNapaDominantAxis(t *testing.T) {
	reg, err := cellar.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	a, _ := reg.State("mosel_riesling")
	b, _ := reg.State("napa_cabernet")
	if got := morphospace.DominantAxis(a, b); got != morphospace.AxisTexturalWeight {
		t.Errorf("DominantAxis(mosel, napa) = %s, want %s", got, morphospace.AxisTexturalWeight)
	}
}
