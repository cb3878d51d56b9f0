package morphospace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	rieslingCrystal = MustState(map[string]float64{
		"structural_tension":  0.90,
		"chromatic_depth":     0.15,
		"aromatic_complexity": 0.55,
		"textural_weight":     0.15,
		"temporal_maturity":   0.10,
	})
	napaMonument = MustState(map[string]float64{
		"structural_tension":  0.60,
		"chromatic_depth":     0.95,
		"aromatic_complexity": 0.50,
		"textural_weight":     0.95,
		"temporal_maturity":   0.20,
	})
)

func TestDistance_SelfIsZero(t *testing.T) {
	assert.Zero(t, Distance(rieslingCrystal, rieslingCrystal))
	assert.Zero(t, Distance(napaMonument, napaMonument))
}

func TestDistance_Symmetric(t *testing.T) {
	assert.Equal(t,
		Distance(rieslingCrystal, napaMonument),
		Distance(napaMonument, rieslingCrystal))
}

func TestDistance_CrystalToMonument(t *testing.T) {
	// Component diffs .30, .80, .05, .80, .10.
	d := Distance(rieslingCrystal, napaMonument)
	assert.InDelta(t, 1.1758, d, 1e-4)
}

func TestDeltas_SignedInAxisOrder(t *testing.T) {
	deltas := Deltas(rieslingCrystal, napaMonument)
	assert.Len(t, deltas, NumAxes)
	assert.Equal(t, AxisStructuralTension, deltas[0].Axis)
	assert.InDelta(t, -0.30, deltas[0].Delta, 1e-9)
	assert.InDelta(t, 0.80, deltas[1].Delta, 1e-9)
	assert.InDelta(t, 0.10, deltas[4].Delta, 1e-9)
}

func TestDominantAxis(t *testing.T) {
	// Endpoint deltas .15, .10, .55, .25, .75: maturity dominates.
	assert.Equal(t, AxisTemporalMaturity, DominantAxis(youngBurgundy, agedBarolo))
}

func TestDominantAxis_TieTakesFirstDeclared(t *testing.T) {
	a := MustState(map[string]float64{
		"structural_tension":  0.10,
		"chromatic_depth":     0.10,
		"aromatic_complexity": 0.50,
		"textural_weight":     0.50,
		"temporal_maturity":   0.50,
	})
	b := MustState(map[string]float64{
		"structural_tension":  0.50,
		"chromatic_depth":     0.50,
		"aromatic_complexity": 0.50,
		"textural_weight":     0.50,
		"temporal_maturity":   0.50,
	})
	// Equal .40 deltas on the first two axes: declaration order wins.
	assert.Equal(t, AxisStructuralTension, DominantAxis(a, b))
}
