package morphospace

import "fmt"

// SequenceStep is one element of a generated oscillation: the step
// index, its phase within the whole sequence, the blend factor the
// waveform produced, and the resulting interpolated state.
type SequenceStep struct {
	Index int
	Phase float64 // index/total in [0, 1)
	Blend float64
	State State
}

// GenerateSequence oscillates between two states. totalSteps is
// cycles·stepsPerCycle; blend factors come from the waveform generator
// and are clamped to [0, 1] before interpolation. phaseOffset rotates
// the computed factor sequence by floor(phaseOffset·stepsPerCycle)
// positions; curated presets always pass 0.
func GenerateSequence(a, b State, pattern Pattern, cycles, stepsPerCycle int, phaseOffset float64) ([]SequenceStep, error) {
	if cycles <= 0 {
		return nil, fmt.Errorf("%w: cycles must be positive, got %d", ErrInvalidArgument, cycles)
	}
	if stepsPerCycle <= 0 {
		return nil, fmt.Errorf("%w: stepsPerCycle must be positive, got %d", ErrInvalidArgument, stepsPerCycle)
	}

	total := cycles * stepsPerCycle
	factors, err := Oscillate(total, float64(cycles), pattern)
	if err != nil {
		return nil, err
	}
	if phaseOffset != 0 {
		factors = Rotate(factors, phaseOffset, stepsPerCycle)
	}

	steps := make([]SequenceStep, total)
	for i, f := range factors {
		blend := clamp01(f)
		steps[i] = SequenceStep{
			Index: i,
			Phase: float64(i) / float64(total),
			Blend: blend,
			State: Interpolate(a, b, blend),
		}
	}
	return steps, nil
}

// RunPreset generates the curated oscillation bound to the preset id.
func (r *Registry) RunPreset(id string) ([]SequenceStep, error) {
	p, err := r.Preset(id)
	if err != nil {
		return nil, err
	}
	a, err := r.State(p.StateA)
	if err != nil {
		return nil, err
	}
	b, err := r.State(p.StateB)
	if err != nil {
		return nil, err
	}
	return GenerateSequence(a, b, p.Pattern, p.Cycles, p.StepsPerCycle, 0)
}

// ExtractKeyframes evenly subsamples a sequence down to count elements.
// If count covers the whole sequence it is returned unchanged; otherwise
// the selected source indices are floor(i·len/count) for i in [0, count),
// strictly increasing with the first index always 0.
func ExtractKeyframes(seq []SequenceStep, count int) ([]SequenceStep, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: keyframe count must be positive, got %d", ErrInvalidArgument, count)
	}
	if count >= len(seq) {
		return seq, nil
	}
	out := make([]SequenceStep, count)
	for i := 0; i < count; i++ {
		out[i] = seq[i*len(seq)/count]
	}
	return out, nil
}
