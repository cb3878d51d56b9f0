package morphospace

import "fmt"

// TrajectorySample is one classified point on an interpolation path.
type TrajectorySample struct {
	T           float64 // i/numSteps in [0, 1]
	State       State
	ArchetypeID string
	Distance    float64 // to the nearest archetype's anchor
}

// Trajectory is the ordered interpolation path between two states, with
// per-sample classification and two endpoint summaries.
type Trajectory struct {
	Samples       []TrajectorySample
	TotalDistance float64 // endpoint-to-endpoint Euclidean distance
	DominantAxis  Axis    // largest absolute endpoint delta
}

// Trajectory builds numSteps+1 samples at t = i/numSteps between the
// two states. t=0 and t=1 reproduce the endpoints exactly; every sample
// is classified against the registry's archetypes.
func (r *Registry) Trajectory(a, b State, numSteps int) (*Trajectory, error) {
	if numSteps <= 0 {
		return nil, fmt.Errorf("%w: numSteps must be positive, got %d", ErrInvalidArgument, numSteps)
	}

	traj := &Trajectory{
		Samples:       make([]TrajectorySample, 0, numSteps+1),
		TotalDistance: Distance(a, b),
		DominantAxis:  DominantAxis(a, b),
	}
	for i := 0; i <= numSteps; i++ {
		t := float64(i) / float64(numSteps)
		s := Interpolate(a, b, t)
		id, dist := r.Nearest(s)
		traj.Samples = append(traj.Samples, TrajectorySample{
			T:           t,
			State:       s,
			ArchetypeID: id,
			Distance:    dist,
		})
	}
	return traj, nil
}
