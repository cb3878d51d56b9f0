package morphospace

import (
	"fmt"
	"strings"
)

// Intensity scales every keyword weight in a vocabulary lookup.
type Intensity string

const (
	IntensitySubtle   Intensity = "subtle"   // ×0.5
	IntensityModerate Intensity = "moderate" // ×1.0
	IntensityDramatic Intensity = "dramatic" // ×1.5
)

var intensityMultipliers = map[Intensity]float64{
	IntensitySubtle:   0.5,
	IntensityModerate: 1.0,
	IntensityDramatic: 1.5,
}

// ParseIntensity resolves an intensity name; empty defaults to moderate.
func ParseIntensity(name string) (Intensity, error) {
	if name == "" {
		return IntensityModerate, nil
	}
	in := Intensity(name)
	if _, ok := intensityMultipliers[in]; !ok {
		return "", fmt.Errorf("%w: unknown intensity %q (valid: subtle, moderate, dramatic)",
			ErrInvalidArgument, name)
	}
	return in, nil
}

// Emphasis selects one keyword group of an archetype bundle for a 1.5×
// boost. Bundles are ordered in four two-keyword groups: color (0-1),
// texture (2-3), structure (4-5), atmosphere (6-7).
type Emphasis string

const (
	EmphasisNone       Emphasis = "none"
	EmphasisColor      Emphasis = "color"
	EmphasisTexture    Emphasis = "texture"
	EmphasisStructure  Emphasis = "structure"
	EmphasisAtmosphere Emphasis = "atmosphere"
)

var emphasisGroups = map[Emphasis]int{
	EmphasisColor:      0,
	EmphasisTexture:    1,
	EmphasisStructure:  2,
	EmphasisAtmosphere: 3,
}

// ParseEmphasis resolves an emphasis category; empty defaults to none.
func ParseEmphasis(name string) (Emphasis, error) {
	if name == "" || Emphasis(name) == EmphasisNone {
		return EmphasisNone, nil
	}
	em := Emphasis(name)
	if _, ok := emphasisGroups[em]; !ok {
		valid := []string{"none", "color", "texture", "structure", "atmosphere"}
		return "", fmt.Errorf("%w: unknown emphasis %q (valid: %s)",
			ErrInvalidArgument, name, strings.Join(valid, ", "))
	}
	return em, nil
}

// WeightedKeyword is one descriptor with its computed weight.
type WeightedKeyword struct {
	Keyword string
	Weight  float64
}

// VocabularyResult is the descriptor bundle of an archetype with
// per-keyword weights applied.
type VocabularyResult struct {
	ArchetypeID string
	Label       string
	Keywords    []WeightedKeyword
	Optics      OpticalProperties
}

// Vocabulary returns the archetype's descriptor bundle weighted by
// intensity and emphasis: weight = multiplier × (1.5 if the keyword's
// index falls in the emphasized group, else 1.0). This is the only seam
// through which descriptive content enters the engine's output; the
// bundle itself is opaque to the engine.
func (r *Registry) Vocabulary(archetypeID string, intensity Intensity, emphasis Emphasis) (*VocabularyResult, error) {
	a, err := r.Archetype(archetypeID)
	if err != nil {
		return nil, err
	}
	mult, ok := intensityMultipliers[intensity]
	if !ok {
		return nil, fmt.Errorf("%w: unknown intensity %q", ErrInvalidArgument, intensity)
	}

	boostLo, boostHi := -1, -1
	if group, ok := emphasisGroups[emphasis]; ok {
		boostLo, boostHi = group*2, group*2+1
	}

	out := &VocabularyResult{
		ArchetypeID: a.ID,
		Label:       a.Label,
		Keywords:    make([]WeightedKeyword, len(a.Keywords)),
		Optics:      a.Optics,
	}
	for i, kw := range a.Keywords {
		w := mult
		if i == boostLo || i == boostHi {
			w *= 1.5
		}
		out.Keywords[i] = WeightedKeyword{Keyword: kw, Weight: w}
	}
	return out, nil
}
