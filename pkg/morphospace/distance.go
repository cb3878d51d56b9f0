package morphospace

import "math"

// Distance is the Euclidean norm over per-axis differences. It is
// symmetric, non-negative, and zero iff the states are equal on every
// axis.
func Distance(a, b State) float64 {
	var sum float64
	for i := 0; i < NumAxes; i++ {
		d := a.v[i] - b.v[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// AxisDelta is one component of a distance breakdown.
type AxisDelta struct {
	Axis  Axis
	Delta float64 // b[axis] - a[axis], signed
}

// Deltas returns the signed per-axis differences b-a in axis order.
func Deltas(a, b State) []AxisDelta {
	out := make([]AxisDelta, NumAxes)
	for i, ax := range axisOrder {
		out[i] = AxisDelta{Axis: ax, Delta: b.v[i] - a.v[i]}
	}
	return out
}

// DominantAxis returns the axis with the largest absolute coordinate
// delta between the two states. Ties are broken by axis declaration
// order: the first axis in the fixed order wins.
func DominantAxis(a, b State) Axis {
	best := 0
	bestDelta := math.Abs(b.v[0] - a.v[0])
	for i := 1; i < NumAxes; i++ {
		if d := math.Abs(b.v[i] - a.v[i]); d > bestDelta {
			best, bestDelta = i, d
		}
	}
	return axisOrder[best]
}
