package morphospace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	youngBurgundy = MustState(map[string]float64{
		"structural_tension":  0.70,
		"chromatic_depth":     0.45,
		"aromatic_complexity": 0.40,
		"textural_weight":     0.40,
		"temporal_maturity":   0.15,
	})
	agedBarolo = MustState(map[string]float64{
		"structural_tension":  0.85,
		"chromatic_depth":     0.55,
		"aromatic_complexity": 0.95,
		"textural_weight":     0.65,
		"temporal_maturity":   0.90,
	})
)

func TestInterpolate_Midpoint(t *testing.T) {
	mid := Interpolate(youngBurgundy, agedBarolo, 0.5)

	want := map[string]float64{
		"structural_tension":  0.775,
		"chromatic_depth":     0.50,
		"aromatic_complexity": 0.675,
		"textural_weight":     0.525,
		"temporal_maturity":   0.525,
	}
	for axis, val := range want {
		assert.InDelta(t, val, mid.Value(Axis(axis)), 1e-9, "axis %s", axis)
	}
}

func TestInterpolate_EndpointsExact(t *testing.T) {
	at0 := Interpolate(youngBurgundy, agedBarolo, 0)
	require.True(t, at0.Equal(youngBurgundy), "alpha=0 must reproduce stateA exactly")

	at1 := Interpolate(youngBurgundy, agedBarolo, 1)
	require.True(t, at1.Equal(agedBarolo), "alpha=1 must reproduce stateB exactly")
}

func TestInterpolate_Extrapolation(t *testing.T) {
	// The interpolator itself does not clamp; alpha outside [0,1] is
	// legal for direct callers.
	out := Interpolate(youngBurgundy, agedBarolo, 2)
	assert.InDelta(t, 1.0, out.Value(AxisStructuralTension), 1e-9)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.3))
	assert.Equal(t, 1.0, clamp01(1.7))
	assert.Equal(t, 0.4, clamp01(0.4))
}
