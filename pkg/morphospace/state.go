package morphospace

import (
	"fmt"
	"math"
	"strings"
)

// State is a point in the morphospace: one value per axis, each in
// [0, 1]. States are immutable value objects; interpolation and
// blending always produce new States.
type State struct {
	v [NumAxes]float64
}

// NewState validates a raw axis→value map and returns the State.
// Every declared axis must be present, no unknown axes are accepted,
// and every value must be a finite number in [0, 1]. Out-of-range
// values are a caller error, never auto-clamped.
func NewState(values map[string]float64) (State, error) {
	var s State
	seen := 0
	for name, val := range values {
		idx, ok := axisIndex[Axis(name)]
		if !ok {
			return State{}, &ValidationError{Axis: name, Reason: "unknown axis"}
		}
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return State{}, &ValidationError{Axis: name, Reason: "value is not a finite number"}
		}
		if val < 0 || val > 1 {
			return State{}, &ValidationError{
				Axis:   name,
				Reason: fmt.Sprintf("value %v outside [0, 1]", val),
			}
		}
		s.v[idx] = val
		seen++
	}
	if seen < NumAxes {
		for _, a := range axisOrder {
			if _, ok := values[string(a)]; !ok {
				return State{}, &ValidationError{Axis: string(a), Reason: "missing"}
			}
		}
	}
	return s, nil
}

// MustState is NewState for registry construction from trusted literals.
// It panics on invalid input.
func MustState(values map[string]float64) State {
	s, err := NewState(values)
	if err != nil {
		panic(err)
	}
	return s
}

// Value returns the coordinate on the given axis. Unknown axes read as 0.
func (s State) Value(a Axis) float64 {
	if idx, ok := axisIndex[a]; ok {
		return s.v[idx]
	}
	return 0
}

// Map returns the state as an axis-name→value map for serialization.
func (s State) Map() map[string]float64 {
	out := make(map[string]float64, NumAxes)
	for i, a := range axisOrder {
		out[string(a)] = s.v[i]
	}
	return out
}

// Equal reports whether two states coincide on every axis.
func (s State) Equal(o State) bool { return s.v == o.v }

// String renders the state in axis order, e.g. for logs and errors.
func (s State) String() string {
	parts := make([]string, NumAxes)
	for i, a := range axisOrder {
		parts[i] = fmt.Sprintf("%s=%.4f", a, s.v[i])
	}
	return "{" + strings.Join(parts, " ") + "}"
}
