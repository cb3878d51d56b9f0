package vocabulary

import (
	"fmt"

	"vinomorph/pkg/morphospace"
)

// DefaultProfile is the standard baseline a caller's omissions fall
// back to: moderate climate, old-world style, french oak, developing
// age, mid-scale balance, medium finish. Numeric fields must be
// defaulted by the caller (a tannin of 0 is meaningful for whites, so
// Compose cannot treat zero as unset).
func DefaultProfile() Profile {
	return Profile{
		Climate:      "moderate",
		Style:        "old_world",
		Oak:          "french_oak",
		Age:          "developing",
		Acidity:      5.0,
		Tannin:       5.0,
		Sweetness:    2.0,
		Alcohol:      6.0,
		Body:         6.0,
		FinishLength: "medium",
	}
}

// withDefaults fills unset categorical fields from DefaultProfile.
// Numeric scales pass through untouched.
func (p Profile) withDefaults() Profile {
	def := DefaultProfile()
	if p.Climate == "" {
		p.Climate = def.Climate
	}
	if p.Style == "" {
		p.Style = def.Style
	}
	if p.Oak == "" {
		p.Oak = def.Oak
	}
	if p.Age == "" {
		p.Age = def.Age
	}
	if p.FinishLength == "" {
		p.FinishLength = def.FinishLength
	}
	return p
}

// visualTension derives the tension descriptor from the structural
// elements (acid + tannin) on the 1-10 scales.
func visualTension(acidity, tannin float64) string {
	score := (acidity/10 + tannin/10) / 2
	switch {
	case score > 0.65:
		return "high angular taut"
	case score > 0.45:
		return "medium balanced"
	default:
		return "low soft relaxed"
	}
}

// visualWeight derives the density descriptor from body and alcohol.
func visualWeight(body, alcohol float64) string {
	score := (body + alcohol) / 20
	switch {
	case score > 0.7:
		return "full dense heavy opaque"
	case score > 0.4:
		return "medium substantial"
	default:
		return "light ethereal transparent"
	}
}

func validateScale(name string, v float64) error {
	if v < 0 || v > 10 {
		return &morphospace.ValidationError{
			Axis:   name,
			Reason: fmt.Sprintf("balance value %v outside [0, 10]", v),
		}
	}
	return nil
}

// Compose builds the complete visual vocabulary for a tasting profile,
// layering the varietal base with climate, style, oak, age, balance,
// finish, and aroma-cluster palettes. Unset fields take the standard
// defaults; unknown names surface as NotFound with the valid set.
func (t *Tables) Compose(p Profile) (*VisualVocabulary, error) {
	p = p.withDefaults()

	for _, scale := range []struct {
		name string
		val  float64
	}{
		{"acidity", p.Acidity}, {"tannin", p.Tannin}, {"sweetness", p.Sweetness},
		{"alcohol", p.Alcohol}, {"body", p.Body},
	} {
		if err := validateScale(scale.name, scale.val); err != nil {
			return nil, err
		}
	}

	varietal, err := t.Varietal(p.Varietal)
	if err != nil {
		return nil, err
	}
	climate, err := t.Climate(p.Climate)
	if err != nil {
		return nil, err
	}
	style, err := t.Style(p.Style)
	if err != nil {
		return nil, err
	}
	oak, err := t.Oak(p.Oak)
	if err != nil {
		return nil, err
	}
	age, err := t.Age(p.Age)
	if err != nil {
		return nil, err
	}
	finish, err := t.Finish(p.FinishLength)
	if err != nil {
		return nil, err
	}

	ageModified := age.WhiteColorShift
	if varietal.Type == "red" {
		ageModified = age.RedColorShift
	}

	agePatina := "fresh new"
	if p.Age == "mature" || p.Age == "past_prime" {
		agePatina = "aged weathered"
	}

	aromaPalette, aromaTextures := t.collectAromas(p.PrimaryAromas)

	return &VisualVocabulary{
		BaseColor: BaseColor{
			Hue:          varietal.ColorHue,
			Description:  varietal.ColorBase,
			AgeModified:  ageModified,
			ClimateShift: climate.ColorShift,
		},
		OpacityClarity: OpacityClarity{
			BaseOpacity:  varietal.Opacity,
			Clarity:      age.VisualClarity,
			VisualWeight: visualWeight(p.Body, p.Alcohol),
		},
		TextureSurface: TextureSurface{
			BaseTexture:     varietal.Texture,
			Structure:       varietal.Structure,
			ClimateModifier: climate.TextureModifier,
			OakOverlay:      oak.TextureOverlay,
			AgeState:        age.TextureState,
		},
		CompositionalStructure: CompositionalStructure{
			BaseComposition: varietal.Composition,
			StyleAesthetic:  style.Aesthetic,
			VisualTension:   visualTension(p.Acidity, p.Tannin),
			Integration:     age.Integration,
			EdgeQuality:     varietal.EdgeQuality,
			EdgeTreatment:   climate.EdgeTreatment,
		},
		AtmosphericQualities: AtmosphericQualities{
			ClimateAtmosphere: climate.Atmosphere,
			StyleAtmosphere:   style.Atmosphere,
			FinishDepth:       finish.AtmosphericDepth,
			FadePattern:       finish.FadePattern,
			TimeSignature:     age.TimeSignature,
		},
		MaterialReferences: MaterialReferences{
			OakMaterials:  oak.MaterialReference,
			FinishQuality: oak.FinishQuality,
			AgePatina:     agePatina,
		},
		ColorPalette: ColorPalette{
			Primary:          varietal.ColorHue,
			AromaPalette:     aromaPalette,
			SaturationAdjust: climate.SaturationAdjust,
			BrightnessAdjust: climate.BrightnessAdjust,
			ColorTreatment:   style.ColorTreatment,
		},
		AromaticDescriptors: AromaticDescriptors{
			CharacteristicNotes: varietal.Notes,
			AromaCategory:       age.AromaticCategory,
			AromaTextures:       aromaTextures,
		},
		BalanceRelationships: BalanceRelationships{
			Acidity:       p.Acidity,
			Tannin:        p.Tannin,
			Sweetness:     p.Sweetness,
			Alcohol:       p.Alcohol,
			Body:          p.Body,
			VisualTension: visualTension(p.Acidity, p.Tannin),
			VisualWeight:  visualWeight(p.Body, p.Alcohol),
		},
		FinishDimension: FinishDimension{
			Length:        p.FinishLength,
			Descriptor:    finish.LengthDescriptor,
			EdgeTreatment: finish.EdgeTreatment,
			FadePattern:   finish.FadePattern,
		},
		Metadata: Metadata{
			Varietal: p.Varietal,
			Climate:  p.Climate,
			Style:    p.Style,
			Oak:      p.Oak,
			Age:      p.Age,
		},
	}, nil
}

// collectAromas gathers the palette colors and texture descriptors of
// every cluster that contains one of the requested notes. Notes that
// belong to no cluster are skipped. The palette is capped at 4 colors;
// textures are de-duplicated in first-seen order. Clusters are scanned
// in sorted name order so the output is stable.
func (t *Tables) collectAromas(notes []string) (palette, textures []string) {
	if len(notes) == 0 {
		return []string{}, []string{}
	}
	palette = []string{}
	textures = []string{}
	seen := make(map[string]bool)
	clusterIDs := t.AromaClusterIDs()
	for _, note := range notes {
		for _, id := range clusterIDs {
			cluster := t.aromas[id]
			if !containsNote(cluster.Notes, note) {
				continue
			}
			if len(palette) < 4 {
				for _, c := range cluster.ColorPalette {
					if len(palette) == 4 {
						break
					}
					palette = append(palette, c)
				}
			}
			for _, tex := range []string{cluster.Brightness, cluster.Texture} {
				if !seen[tex] {
					seen[tex] = true
					textures = append(textures, tex)
				}
			}
		}
	}
	return palette, textures
}

func containsNote(notes []string, want string) bool {
	for _, n := range notes {
		if n == want {
			return true
		}
	}
	return false
}
