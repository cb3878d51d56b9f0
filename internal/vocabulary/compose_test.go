package vocabulary_test

import (
	"errors"
	"testing"

	"vinomorph/internal/vocabulary"
	"vinomorph/pkg/morphospace"

	"github.com/google/go-cmp/cmp"
)

func loadTables(t *testing.T) *vocabulary.Tables {
	t.Helper()
	tables, err := vocabulary.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return tables
}

func TestLoad_TableCompleteness(t *testing.T) {
	tables := loadTables(t)

	if got := len(tables.VarietalIDs()); got != 18 {
		t.Errorf("varietal count = %d, want 18", got)
	}
	if got := len(tables.AromaClusterIDs()); got != 10 {
		t.Errorf("aroma cluster count = %d, want 10", got)
	}
	wantRegions := []string{
		"barolo", "burgundy_red", "burgundy_white", "marlborough_sauvignon",
		"mosel_riesling", "napa_cabernet", "rhone_syrah", "rioja_tempranillo",
	}
	if diff := cmp.Diff(wantRegions, tables.RegionIDs()); diff != "" {
		t.Errorf("RegionIDs mismatch:\n%s", diff)
	}
}

func TestCompose_BurgundyPinot(t *testing.T) {
	tables := loadTables(t)

	v, err := tables.Compose(vocabulary.Profile{
		Varietal:      "pinot_noir",
		Climate:       "cool",
		Style:         "old_world",
		Oak:           "french_oak",
		Age:           "developing",
		Acidity:       7.5,
		Tannin:        6.0,
		Sweetness:     2.0,
		Alcohol:       6.5,
		Body:          5.5,
		FinishLength:  "long",
		PrimaryAromas: []string{"cherry", "mushroom", "rose"},
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if v.BaseColor.Hue != "#8B2635" {
		t.Errorf("hue = %q, want #8B2635", v.BaseColor.Hue)
	}
	if v.BaseColor.AgeModified != "garnet ruby-brick" {
		t.Errorf("age-modified color = %q (red shift expected)", v.BaseColor.AgeModified)
	}
	// (7.5/10 + 6/10)/2 = 0.675 > 0.65.
	if v.BalanceRelationships.VisualTension != "high angular taut" {
		t.Errorf("visual tension = %q", v.BalanceRelationships.VisualTension)
	}
	// (5.5 + 6.5)/20 = 0.6: medium band.
	if v.BalanceRelationships.VisualWeight != "medium substantial" {
		t.Errorf("visual weight = %q", v.BalanceRelationships.VisualWeight)
	}
	if len(v.ColorPalette.AromaPalette) != 4 {
		t.Errorf("aroma palette has %d colors, want 4 (capped)", len(v.ColorPalette.AromaPalette))
	}
	if len(v.AromaticDescriptors.AromaTextures) == 0 {
		t.Error("expected aroma textures from matched clusters")
	}
	if v.AtmosphericQualities.ClimateAtmosphere != "cool restrained mineral" {
		t.Errorf("climate atmosphere = %q", v.AtmosphericQualities.ClimateAtmosphere)
	}
}

func TestCompose_WhiteShiftAndZeroTannin(t *testing.T) {
	tables := loadTables(t)

	// Mosel Riesling: tannin 0 must stay 0, not be defaulted away.
	v, err := tables.Compose(vocabulary.Profile{
		Varietal:     "riesling",
		Climate:      "cool",
		Oak:          "none",
		Age:          "youthful",
		Acidity:      9.0,
		Tannin:       0.0,
		Sweetness:    4.0,
		Alcohol:      4.5,
		Body:         4.0,
		FinishLength: "long",
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if v.BaseColor.AgeModified != "pale straw green-tinged" {
		t.Errorf("age-modified color = %q (white shift expected)", v.BaseColor.AgeModified)
	}
	// (9/10 + 0/10)/2 = 0.45: not above the medium band threshold.
	if v.BalanceRelationships.VisualTension != "low soft relaxed" {
		t.Errorf("visual tension = %q", v.BalanceRelationships.VisualTension)
	}
	// (4.0 + 4.5)/20 = 0.425: medium band.
	if v.BalanceRelationships.VisualWeight != "medium substantial" {
		t.Errorf("visual weight = %q", v.BalanceRelationships.VisualWeight)
	}
	if v.MaterialReferences.OakMaterials != "glass crystal water" {
		t.Errorf("oak materials = %q", v.MaterialReferences.OakMaterials)
	}
}

func TestCompose_CategoricalDefaults(t *testing.T) {
	tables := loadTables(t)

	v, err := tables.Compose(vocabulary.Profile{
		Varietal: "merlot",
		Acidity:  5, Tannin: 5, Sweetness: 2, Alcohol: 6, Body: 6,
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	want := vocabulary.Metadata{
		Varietal: "merlot",
		Climate:  "moderate",
		Style:    "old_world",
		Oak:      "french_oak",
		Age:      "developing",
	}
	if diff := cmp.Diff(want, v.Metadata); diff != "" {
		t.Errorf("metadata mismatch:\n%s", diff)
	}
}

func TestCompose_UnknownVarietal(t *testing.T) {
	tables := loadTables(t)

	_, err := tables.Compose(vocabulary.Profile{Varietal: "pinotage"})
	if !errors.Is(err, morphospace.ErrNotFound) {
		t.Fatalf("err = %v, want NotFound", err)
	}
	var nf *morphospace.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err %v is not a NotFoundError", err)
	}
	if nf.Kind != "varietal" || len(nf.Valid) != 18 {
		t.Errorf("NotFoundError = %+v, want varietal kind with 18 valid ids", nf)
	}
}

func TestCompose_OutOfRangeScale(t *testing.T) {
	tables := loadTables(t)

	_, err := tables.Compose(vocabulary.Profile{Varietal: "merlot", Acidity: 11})
	if !errors.Is(err, morphospace.ErrValidation) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestCompose_UnmatchedAromasSkipped(t *testing.T) {
	tables := loadTables(t)

	v, err := tables.Compose(vocabulary.Profile{
		Varietal: "riesling",
		Acidity:  5, Tannin: 5, Sweetness: 2, Alcohol: 6, Body: 6,
		PrimaryAromas: []string{"petrol"}, // in no cluster
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if len(v.ColorPalette.AromaPalette) != 0 {
		t.Errorf("palette = %v, want empty for unmatched notes", v.ColorPalette.AromaPalette)
	}
}

func TestRegion_RoundTrip(t *testing.T) {
	tables := loadTables(t)

	for _, id := range tables.RegionIDs() {
		profile, err := tables.Region(id)
		if err != nil {
			t.Fatalf("Region(%q): %v", id, err)
		}
		if _, err := tables.Compose(profile); err != nil {
			t.Errorf("Compose(region %q): %v", id, err)
		}
	}

	_, err := tables.Region("atlantis")
	if !errors.Is(err, morphospace.ErrNotFound) {
		t.Errorf("unknown region err = %v, want NotFound", err)
	}
}

func TestCompare_PinotVsCabernet(t *testing.T) {
	tables := loadTables(t)

	cmpResult, err := tables.Compare(
		vocabulary.Profile{
			Varietal: "pinot_noir", Climate: "cool", Age: "mature",
			Acidity: 7.5, Tannin: 6.0, Sweetness: 2, Alcohol: 6, Body: 5.5,
		},
		vocabulary.Profile{
			Varietal: "cabernet_sauvignon", Climate: "warm", Style: "new_world", Age: "youthful",
			Acidity: 5.5, Tannin: 8.5, Sweetness: 2, Alcohol: 8.5, Body: 9.0,
		},
	)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	if cmpResult.ColorContrast.Difference != "significant" {
		t.Errorf("color difference = %q, want significant (different hues)", cmpResult.ColorContrast.Difference)
	}
	if cmpResult.WeightContrast.Wine2 != "full dense heavy opaque" {
		t.Errorf("cabernet weight = %q", cmpResult.WeightContrast.Wine2)
	}
	if cmpResult.BalanceComparison.Wine1Tension != "high angular taut" {
		t.Errorf("pinot tension = %q", cmpResult.BalanceComparison.Wine1Tension)
	}
}

func TestEvolution_AllStages(t *testing.T) {
	tables := loadTables(t)

	seq, err := tables.Evolution(vocabulary.Profile{
		Varietal: "pinot_noir", Climate: "cool",
		Acidity: 7.5, Tannin: 6.0, Sweetness: 2, Alcohol: 6.5, Body: 5.5,
		FinishLength: "long",
	})
	if err != nil {
		t.Fatalf("Evolution: %v", err)
	}

	if len(seq.Stages) != 4 {
		t.Fatalf("stage count = %d, want 4", len(seq.Stages))
	}
	if got := seq.Stages["youthful"].OpacityClarity.Clarity; got != "brilliant star-bright" {
		t.Errorf("youthful clarity = %q", got)
	}
	if got := seq.Stages["past_prime"].OpacityClarity.Clarity; got != "dull fading" {
		t.Errorf("past_prime clarity = %q", got)
	}
	if got := seq.Stages["mature"].AromaticDescriptors.AromaCategory; got != "tertiary developed savory" {
		t.Errorf("mature aromatics = %q", got)
	}
	if len(seq.KeyTransformations) != 4 {
		t.Errorf("key transformations = %v", seq.KeyTransformations)
	}
}
