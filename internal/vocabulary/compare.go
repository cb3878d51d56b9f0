package vocabulary

import "fmt"

// Comparison is the contrast report between two composed profiles.
type Comparison struct {
	ColorContrast       ColorContrast       `json:"color_contrast"`
	TextureContrast     TextureContrast     `json:"texture_contrast"`
	WeightContrast      WeightContrast      `json:"weight_contrast"`
	AtmosphericContrast AtmosphericContrast `json:"atmospheric_contrast"`
	BalanceComparison   BalanceComparison   `json:"balance_comparison"`
}

type ColorContrast struct {
	Wine1      BaseColor `json:"wine1"`
	Wine2      BaseColor `json:"wine2"`
	Difference string    `json:"difference"` // "significant" or "subtle"
}

type TextureContrast struct {
	Wine1                string `json:"wine1"`
	Wine2                string `json:"wine2"`
	StructuralDifference string `json:"structural_difference"`
}

type WeightContrast struct {
	Wine1 string `json:"wine1"`
	Wine2 string `json:"wine2"`
}

type AtmosphericContrast struct {
	Wine1 AtmosphericQualities `json:"wine1"`
	Wine2 AtmosphericQualities `json:"wine2"`
}

type BalanceComparison struct {
	Wine1Tension string `json:"wine1_tension"`
	Wine2Tension string `json:"wine2_tension"`
	Wine1Weight  string `json:"wine1_weight"`
	Wine2Weight  string `json:"wine2_weight"`
}

// Compare composes both profiles and reports their visual contrasts.
func (t *Tables) Compare(p1, p2 Profile) (*Comparison, error) {
	v1, err := t.Compose(p1)
	if err != nil {
		return nil, fmt.Errorf("first profile: %w", err)
	}
	v2, err := t.Compose(p2)
	if err != nil {
		return nil, fmt.Errorf("second profile: %w", err)
	}

	difference := "subtle"
	if v1.BaseColor.Hue != v2.BaseColor.Hue {
		difference = "significant"
	}

	return &Comparison{
		ColorContrast: ColorContrast{
			Wine1:      v1.BaseColor,
			Wine2:      v2.BaseColor,
			Difference: difference,
		},
		TextureContrast: TextureContrast{
			Wine1: v1.TextureSurface.BaseTexture,
			Wine2: v2.TextureSurface.BaseTexture,
			StructuralDifference: fmt.Sprintf("%s vs %s",
				v1.TextureSurface.Structure, v2.TextureSurface.Structure),
		},
		WeightContrast: WeightContrast{
			Wine1: v1.OpacityClarity.VisualWeight,
			Wine2: v2.OpacityClarity.VisualWeight,
		},
		AtmosphericContrast: AtmosphericContrast{
			Wine1: v1.AtmosphericQualities,
			Wine2: v2.AtmosphericQualities,
		},
		BalanceComparison: BalanceComparison{
			Wine1Tension: v1.BalanceRelationships.VisualTension,
			Wine2Tension: v2.BalanceRelationships.VisualTension,
			Wine1Weight:  v1.BalanceRelationships.VisualWeight,
			Wine2Weight:  v2.BalanceRelationships.VisualWeight,
		},
	}, nil
}
