package morphospace

// Interpolate produces the linear blend of two states:
//
//	result[axis] = a[axis]*(1-alpha) + b[axis]*alpha
//
// alpha=0 reproduces a exactly and alpha=1 reproduces b exactly. The
// function itself does not restrict alpha to [0, 1], so callers may
// extrapolate, but every sequencer in this package clamps first.
func Interpolate(a, b State, alpha float64) State {
	var out State
	for i := 0; i < NumAxes; i++ {
		out.v[i] = a.v[i]*(1-alpha) + b.v[i]*alpha
	}
	return out
}

// clamp01 bounds a blend factor to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
