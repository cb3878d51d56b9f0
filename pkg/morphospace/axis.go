package morphospace

// Axis is one of the five fixed normalized dimensions of the morphospace.
type Axis string

// The five axes, in declared order. Order matters for display and for
// dominant-axis tie-breaking; computation treats axes uniformly.
const (
	AxisStructuralTension  Axis = "structural_tension"
	AxisChromaticDepth     Axis = "chromatic_depth"
	AxisAromaticComplexity Axis = "aromatic_complexity"
	AxisTexturalWeight     Axis = "textural_weight"
	AxisTemporalMaturity   Axis = "temporal_maturity"
)

// NumAxes is the dimensionality of the space.
const NumAxes = 5

var axisOrder = [NumAxes]Axis{
	AxisStructuralTension,
	AxisChromaticDepth,
	AxisAromaticComplexity,
	AxisTexturalWeight,
	AxisTemporalMaturity,
}

var axisIndex = map[Axis]int{
	AxisStructuralTension:  0,
	AxisChromaticDepth:     1,
	AxisAromaticComplexity: 2,
	AxisTexturalWeight:     3,
	AxisTemporalMaturity:   4,
}

// Axes returns the five axis names in declared order.
func Axes() []Axis {
	out := make([]Axis, NumAxes)
	copy(out, axisOrder[:])
	return out
}
