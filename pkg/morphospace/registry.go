package morphospace

import (
	"fmt"
	"sort"
)

// OpticalProperties are the categorical visual fields attached to an
// archetype's descriptor bundle. The engine passes them through opaquely.
type OpticalProperties struct {
	Finish       string   `json:"finish" yaml:"finish"`
	Transparency string   `json:"transparency" yaml:"transparency"`
	Refraction   string   `json:"refraction" yaml:"refraction"`
	Palette      []string `json:"palette" yaml:"palette"`
}

// Archetype is a named anchor point used as a nearest-neighbor
// classification target, carrying its descriptor bundle.
type Archetype struct {
	ID       string
	Anchor   State
	Keywords []string // ordered: color, texture, structure, atmosphere pairs
	Optics   OpticalProperties
	Label    string
}

// Preset binds an identifier to a curated (stateA, stateB, pattern,
// cycles, stepsPerCycle) oscillation between two canonical states.
type Preset struct {
	ID            string
	StateA        string
	StateB        string
	Pattern       Pattern
	Cycles        int
	StepsPerCycle int
	Label         string
}

// Registry holds the static tables the engine classifies and sequences
// against: canonical states, archetypes, and presets. It is built once
// before any request is served and never mutated afterward, so it may
// be shared by any number of concurrent callers.
type Registry struct {
	states     map[string]State
	archetypes map[string]Archetype
	presets    map[string]Preset

	stateIDs     []string
	archetypeIDs []string
	presetIDs    []string
}

// NewRegistry validates cross-references and returns an immutable
// registry. Presets must reference registered canonical states, and at
// least one archetype is required (the classifier has nothing to return
// otherwise).
func NewRegistry(states map[string]State, archetypes []Archetype, presets []Preset) (*Registry, error) {
	if len(archetypes) == 0 {
		return nil, fmt.Errorf("%w: registry needs at least one archetype", ErrInvalidArgument)
	}

	r := &Registry{
		states:     make(map[string]State, len(states)),
		archetypes: make(map[string]Archetype, len(archetypes)),
		presets:    make(map[string]Preset, len(presets)),
	}
	for id, s := range states {
		r.states[id] = s
		r.stateIDs = append(r.stateIDs, id)
	}
	for _, a := range archetypes {
		if _, dup := r.archetypes[a.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate archetype id %q", ErrInvalidArgument, a.ID)
		}
		r.archetypes[a.ID] = a
		r.archetypeIDs = append(r.archetypeIDs, a.ID)
	}
	for _, p := range presets {
		if _, ok := r.states[p.StateA]; !ok {
			return nil, fmt.Errorf("%w: preset %q references unknown state %q", ErrInvalidArgument, p.ID, p.StateA)
		}
		if _, ok := r.states[p.StateB]; !ok {
			return nil, fmt.Errorf("%w: preset %q references unknown state %q", ErrInvalidArgument, p.ID, p.StateB)
		}
		if p.Cycles <= 0 || p.StepsPerCycle <= 0 {
			return nil, fmt.Errorf("%w: preset %q has non-positive cycles or steps", ErrInvalidArgument, p.ID)
		}
		r.presets[p.ID] = p
		r.presetIDs = append(r.presetIDs, p.ID)
	}
	sort.Strings(r.stateIDs)
	sort.Strings(r.archetypeIDs)
	sort.Strings(r.presetIDs)
	return r, nil
}

// State resolves a canonical-state id.
func (r *Registry) State(id string) (State, error) {
	s, ok := r.states[id]
	if !ok {
		return State{}, &NotFoundError{Kind: "state", ID: id, Valid: r.StateIDs()}
	}
	return s, nil
}

// Archetype resolves an archetype id.
func (r *Registry) Archetype(id string) (Archetype, error) {
	a, ok := r.archetypes[id]
	if !ok {
		return Archetype{}, &NotFoundError{Kind: "archetype", ID: id, Valid: r.ArchetypeIDs()}
	}
	return a, nil
}

// Preset resolves a preset id.
func (r *Registry) Preset(id string) (Preset, error) {
	p, ok := r.presets[id]
	if !ok {
		return Preset{}, &NotFoundError{Kind: "preset", ID: id, Valid: r.PresetIDs()}
	}
	return p, nil
}

// StateIDs returns the canonical-state ids, sorted.
func (r *Registry) StateIDs() []string { return append([]string(nil), r.stateIDs...) }

// ArchetypeIDs returns the archetype ids, sorted.
func (r *Registry) ArchetypeIDs() []string { return append([]string(nil), r.archetypeIDs...) }

// PresetIDs returns the preset ids, sorted.
func (r *Registry) PresetIDs() []string { return append([]string(nil), r.presetIDs...) }

// Nearest classifies a state against every archetype and returns the id
// and distance of the closest anchor. Archetypes are scanned in
// ascending lexicographic id order with a strict less-than comparison,
// so equidistant anchors resolve to the smallest id; the same answer
// on every call.
func (r *Registry) Nearest(s State) (string, float64) {
	bestID := ""
	bestDist := 0.0
	for _, id := range r.archetypeIDs {
		d := Distance(s, r.archetypes[id].Anchor)
		if bestID == "" || d < bestDist {
			bestID, bestDist = id, d
		}
	}
	return bestID, bestDist
}
