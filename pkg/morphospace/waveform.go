package morphospace

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Pattern is the periodic shape used to generate blend factors.
// The set is closed: each kind has its own compute function.
type Pattern int

const (
	PatternSinusoidal Pattern = iota
	PatternTriangular
	PatternSquare
)

var patternNames = map[Pattern]string{
	PatternSinusoidal: "sinusoidal",
	PatternTriangular: "triangular",
	PatternSquare:     "square",
}

func (p Pattern) String() string {
	if name, ok := patternNames[p]; ok {
		return name
	}
	return fmt.Sprintf("pattern(%d)", int(p))
}

// ParsePattern resolves a pattern name. Unknown names are an
// InvalidArgument carrying the valid set.
func ParsePattern(name string) (Pattern, error) {
	for p, n := range patternNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown pattern %q (valid: %s)",
		ErrInvalidArgument, name, strings.Join(PatternNames(), ", "))
}

// PatternNames returns the valid pattern names, sorted.
func PatternNames() []string {
	names := make([]string, 0, len(patternNames))
	for _, n := range patternNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Oscillate produces totalSteps blend factors in [0, 1] following the
// given pattern over the given number of cycles. For index i,
// theta = 2π·cycles·i/totalSteps and u = (theta/2π) mod 1:
//
//	sinusoidal: 0.5·(1 + sin(theta))
//	triangular: 2u for u < 0.5, else 2·(1-u)
//	square:     0 for u < 0.5, else 1
//
// All three are periodic with period totalSteps/cycles samples; square
// emits only the two extremes.
func Oscillate(totalSteps int, cycles float64, pattern Pattern) ([]float64, error) {
	if totalSteps <= 0 {
		return nil, fmt.Errorf("%w: totalSteps must be positive, got %d", ErrInvalidArgument, totalSteps)
	}
	if cycles <= 0 {
		return nil, fmt.Errorf("%w: cycles must be positive, got %v", ErrInvalidArgument, cycles)
	}

	var sample func(theta float64) float64
	switch pattern {
	case PatternSinusoidal:
		sample = sampleSinusoidal
	case PatternTriangular:
		sample = sampleTriangular
	case PatternSquare:
		sample = sampleSquare
	default:
		return nil, fmt.Errorf("%w: unknown pattern %s (valid: %s)",
			ErrInvalidArgument, pattern, strings.Join(PatternNames(), ", "))
	}

	out := make([]float64, totalSteps)
	for i := range out {
		theta := 2 * math.Pi * cycles * float64(i) / float64(totalSteps)
		out[i] = sample(theta)
	}
	return out, nil
}

func sampleSinusoidal(theta float64) float64 {
	return 0.5 * (1 + math.Sin(theta))
}

func sampleTriangular(theta float64) float64 {
	u := math.Mod(theta/(2*math.Pi), 1)
	if u < 0.5 {
		return 2 * u
	}
	return 2 * (1 - u)
}

func sampleSquare(theta float64) float64 {
	u := math.Mod(theta/(2*math.Pi), 1)
	if u < 0.5 {
		return 0
	}
	return 1
}

// Rotate circularly shifts a sequence right by floor(offset·stepsPerCycle)
// positions. This is how phase offset is applied: a structural rotation
// of the computed array, not a change to the phase formula. Curated
// presets never rotate; only the freeform generator does.
func Rotate(seq []float64, offset float64, stepsPerCycle int) []float64 {
	n := len(seq)
	if n == 0 {
		return seq
	}
	shift := int(math.Floor(offset*float64(stepsPerCycle))) % n
	if shift < 0 {
		shift += n
	}
	if shift == 0 {
		out := make([]float64, n)
		copy(out, seq)
		return out
	}
	out := make([]float64, n)
	copy(out[shift:], seq[:n-shift])
	copy(out[:shift], seq[n-shift:])
	return out
}
