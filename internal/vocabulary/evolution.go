package vocabulary

import "fmt"

// ageStages in temporal order.
var ageStages = []string{"youthful", "developing", "mature", "past_prime"}

// EvolutionSequence shows the same wine composed at every age stage.
type EvolutionSequence struct {
	Stages             map[string]*VisualVocabulary `json:"evolution_sequence"`
	KeyTransformations map[string]string            `json:"key_transformations"`
}

// Evolution composes the profile at each of the four age categories,
// ignoring any age set on the input.
func (t *Tables) Evolution(p Profile) (*EvolutionSequence, error) {
	stages := make(map[string]*VisualVocabulary, len(ageStages))
	for _, age := range ageStages {
		staged := p
		staged.Age = age
		v, err := t.Compose(staged)
		if err != nil {
			return nil, fmt.Errorf("age %s: %w", age, err)
		}
		stages[age] = v
	}

	return &EvolutionSequence{
		Stages: stages,
		KeyTransformations: map[string]string{
			"color":     "purple/pale → garnet/gold → brick/amber → brown",
			"texture":   "taut → integrating → silky → thin",
			"aromatics": "primary → secondary → tertiary → fading",
			"clarity":   "brilliant → bright → clear → dull",
		},
	}, nil
}

// AgeStages returns the age categories in temporal order.
func AgeStages() []string {
	out := make([]string, len(ageStages))
	copy(out, ageStages)
	return out
}
