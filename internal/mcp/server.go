// Package mcp exposes the morphospace engine and the vocabulary
// composer as MCP tools over the official Go SDK. Handlers are
// stateless: the registry and tables are loaded once and shared.
package mcp

import (
	"context"
	"fmt"
	"math"
	"sort"

	"vinomorph/internal/logging"
	"vinomorph/internal/vocabulary"
	"vinomorph/pkg/morphospace"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP SDK server around the loaded registry and
// vocabulary tables.
type Server struct {
	MCPServer *sdkmcp.Server

	registry *morphospace.Registry
	tables   *vocabulary.Tables
}

// NewServer creates an MCP server exposing the engine and vocabulary
// tools. Version is reported in the MCP handshake.
func NewServer(reg *morphospace.Registry, tables *vocabulary.Tables, version string) *Server {
	s := &Server{registry: reg, tables: tables}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "vinomorph", Version: version},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "validate_state",
		Description: "Validate a five-axis parameter state. Reports per-axis problems without clamping.",
	}, s.handleValidateState)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "interpolate_states",
		Description: "Linear blend between two states at a given alpha. Alpha outside [0,1] extrapolates.",
	}, s.handleInterpolate)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "distance",
		Description: "Euclidean distance between two states, with per-axis deltas and the dominant axis.",
	}, s.handleDistance)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "nearest_archetype",
		Description: "Classify a state against the registered archetype anchors. Ties resolve to the lexicographically smallest id.",
	}, s.handleNearest)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "trajectory",
		Description: "Sample the interpolation path between two states, classifying every sample.",
	}, s.handleTrajectory)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "oscillate",
		Description: "Oscillate between two states with a waveform (sinusoidal, triangular, or square), returning every generated step. An optional phase offset rotates the blend sequence.",
	}, s.handleOscillate)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "run_preset",
		Description: "Run a curated oscillation preset and return every generated step.",
	}, s.handleRunPreset)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "extract_keyframes",
		Description: "Pick evenly spaced keyframes from a preset's generated sequence.",
	}, s.handleExtractKeyframes)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "vocabulary_for",
		Description: "Weighted descriptor bundle for an archetype, scaled by intensity and emphasis.",
	}, s.handleVocabularyFor)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "generate_visual_vocabulary",
		Description: "Compose the full visual vocabulary for a tasting profile (varietal plus modifiers and balance scales).",
	}, s.handleGenerateVocabulary)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "regional_preset",
		Description: "Load a classic regional profile and compose its visual vocabulary.",
	}, s.handleRegionalPreset)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "evolution_sequence",
		Description: "Compose the same profile at every age stage, youthful through past prime.",
	}, s.handleEvolution)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "compare_profiles",
		Description: "Compose two profiles and report their visual contrasts.",
	}, s.handleCompare)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_varietals",
		Description: "List the known grape varietals.",
	}, s.handleListVarietals)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_aroma_clusters",
		Description: "List the aroma clusters with their member notes.",
	}, s.handleListAromas)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_registry",
		Description: "List the registered canonical states, archetype anchors, and presets.",
	}, s.handleListRegistry)
}

// --- Shared input/output helpers ---

// stateRef names a state either by registry id or by raw coordinates.
// Exactly one of the two must be set. Ids cover both canonical states
// and archetype anchors, so riesling_crystal names its anchor the same
// way mosel_riesling names a canonical state.
type stateRef struct {
	StateID     string             `json:"state_id,omitempty" jsonschema:"canonical state or archetype id from the registry"`
	Coordinates map[string]float64 `json:"coordinates,omitempty" jsonschema:"raw five-axis coordinates in [0,1]"`
}

func (s *Server) resolveState(ref stateRef) (morphospace.State, error) {
	switch {
	case ref.StateID != "" && ref.Coordinates != nil:
		return morphospace.State{}, fmt.Errorf("%w: set state_id or coordinates, not both", morphospace.ErrInvalidArgument)
	case ref.StateID != "":
		return s.lookupStateID(ref.StateID)
	case ref.Coordinates != nil:
		return morphospace.NewState(ref.Coordinates)
	default:
		return morphospace.State{}, fmt.Errorf("%w: state_id or coordinates required", morphospace.ErrInvalidArgument)
	}
}

// lookupStateID resolves an id against the canonical states first and
// the archetype anchors second. Canonical states win when both
// registries carry the same id.
func (s *Server) lookupStateID(id string) (morphospace.State, error) {
	if st, err := s.registry.State(id); err == nil {
		return st, nil
	}
	if a, err := s.registry.Archetype(id); err == nil {
		return a.Anchor, nil
	}
	valid := append(s.registry.StateIDs(), s.registry.ArchetypeIDs()...)
	sort.Strings(valid)
	return morphospace.State{}, &morphospace.NotFoundError{Kind: "state or archetype", ID: id, Valid: valid}
}

// round4 is the boundary precision for every reported numeric. The
// engine itself runs at full float64 precision.
func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}

func stateOut(s morphospace.State) map[string]float64 {
	out := s.Map()
	for k, v := range out {
		out[k] = round4(v)
	}
	return out
}

type stepOut struct {
	Index int                `json:"index"`
	Phase float64            `json:"phase"`
	Blend float64            `json:"blend"`
	State map[string]float64 `json:"state"`
}

func stepsOut(steps []morphospace.SequenceStep) []stepOut {
	out := make([]stepOut, len(steps))
	for i, st := range steps {
		out[i] = stepOut{
			Index: st.Index,
			Phase: round4(st.Phase),
			Blend: round4(st.Blend),
			State: stateOut(st.State),
		}
	}
	return out
}

// --- Engine tools ---

type validateStateInput struct {
	Coordinates map[string]float64 `json:"coordinates" jsonschema:"five-axis coordinates to validate"`
}

type validateStateOutput struct {
	Valid  bool               `json:"valid"`
	Reason string             `json:"reason,omitempty"`
	State  map[string]float64 `json:"state,omitempty"`
}

func (s *Server) handleValidateState(ctx context.Context, _ *sdkmcp.CallToolRequest, input validateStateInput) (*sdkmcp.CallToolResult, validateStateOutput, error) {
	st, err := morphospace.NewState(input.Coordinates)
	if err != nil {
		return nil, validateStateOutput{Valid: false, Reason: err.Error()}, nil
	}
	return nil, validateStateOutput{Valid: true, State: stateOut(st)}, nil
}

type interpolateInput struct {
	StateA stateRef `json:"state_a" jsonschema:"first endpoint"`
	StateB stateRef `json:"state_b" jsonschema:"second endpoint"`
	Alpha  float64  `json:"alpha" jsonschema:"blend factor; 0 returns state_a, 1 returns state_b"`
}

type interpolateOutput struct {
	State map[string]float64 `json:"state"`
}

func (s *Server) handleInterpolate(ctx context.Context, _ *sdkmcp.CallToolRequest, input interpolateInput) (*sdkmcp.CallToolResult, interpolateOutput, error) {
	a, err := s.resolveState(input.StateA)
	if err != nil {
		return nil, interpolateOutput{}, fmt.Errorf("state_a: %w", err)
	}
	b, err := s.resolveState(input.StateB)
	if err != nil {
		return nil, interpolateOutput{}, fmt.Errorf("state_b: %w", err)
	}
	return nil, interpolateOutput{State: stateOut(morphospace.Interpolate(a, b, input.Alpha))}, nil
}

type distanceInput struct {
	StateA stateRef `json:"state_a" jsonschema:"first state"`
	StateB stateRef `json:"state_b" jsonschema:"second state"`
}

type axisDeltaOut struct {
	Axis  string  `json:"axis"`
	Delta float64 `json:"delta"`
}

type distanceOutput struct {
	Distance     float64        `json:"distance"`
	Deltas       []axisDeltaOut `json:"deltas"`
	DominantAxis string         `json:"dominant_axis"`
}

func (s *Server) handleDistance(ctx context.Context, _ *sdkmcp.CallToolRequest, input distanceInput) (*sdkmcp.CallToolResult, distanceOutput, error) {
	a, err := s.resolveState(input.StateA)
	if err != nil {
		return nil, distanceOutput{}, fmt.Errorf("state_a: %w", err)
	}
	b, err := s.resolveState(input.StateB)
	if err != nil {
		return nil, distanceOutput{}, fmt.Errorf("state_b: %w", err)
	}

	deltas := morphospace.Deltas(a, b)
	out := distanceOutput{
		Distance:     round4(morphospace.Distance(a, b)),
		Deltas:       make([]axisDeltaOut, len(deltas)),
		DominantAxis: string(morphospace.DominantAxis(a, b)),
	}
	for i, d := range deltas {
		out.Deltas[i] = axisDeltaOut{Axis: string(d.Axis), Delta: round4(d.Delta)}
	}
	return nil, out, nil
}

type nearestInput struct {
	State stateRef `json:"state" jsonschema:"state to classify"`
}

type nearestOutput struct {
	ArchetypeID string  `json:"archetype_id"`
	Label       string  `json:"label"`
	Distance    float64 `json:"distance"`
}

func (s *Server) handleNearest(ctx context.Context, _ *sdkmcp.CallToolRequest, input nearestInput) (*sdkmcp.CallToolResult, nearestOutput, error) {
	st, err := s.resolveState(input.State)
	if err != nil {
		return nil, nearestOutput{}, err
	}

	id, dist := s.registry.Nearest(st)
	a, err := s.registry.Archetype(id)
	if err != nil {
		return nil, nearestOutput{}, err
	}
	return nil, nearestOutput{ArchetypeID: id, Label: a.Label, Distance: round4(dist)}, nil
}

type trajectoryInput struct {
	StateA   stateRef `json:"state_a" jsonschema:"path start"`
	StateB   stateRef `json:"state_b" jsonschema:"path end"`
	NumSteps int      `json:"num_steps" jsonschema:"number of intervals; produces num_steps+1 samples"`
}

type trajectorySampleOut struct {
	T           float64            `json:"t"`
	State       map[string]float64 `json:"state"`
	ArchetypeID string             `json:"archetype_id"`
	Distance    float64            `json:"distance"`
}

type trajectoryOutput struct {
	Samples       []trajectorySampleOut `json:"samples"`
	TotalDistance float64               `json:"total_distance"`
	DominantAxis  string                `json:"dominant_axis"`
}

func (s *Server) handleTrajectory(ctx context.Context, _ *sdkmcp.CallToolRequest, input trajectoryInput) (*sdkmcp.CallToolResult, trajectoryOutput, error) {
	a, err := s.resolveState(input.StateA)
	if err != nil {
		return nil, trajectoryOutput{}, fmt.Errorf("state_a: %w", err)
	}
	b, err := s.resolveState(input.StateB)
	if err != nil {
		return nil, trajectoryOutput{}, fmt.Errorf("state_b: %w", err)
	}

	traj, err := s.registry.Trajectory(a, b, input.NumSteps)
	if err != nil {
		return nil, trajectoryOutput{}, err
	}

	out := trajectoryOutput{
		Samples:       make([]trajectorySampleOut, len(traj.Samples)),
		TotalDistance: round4(traj.TotalDistance),
		DominantAxis:  string(traj.DominantAxis),
	}
	for i, smp := range traj.Samples {
		out.Samples[i] = trajectorySampleOut{
			T:           round4(smp.T),
			State:       stateOut(smp.State),
			ArchetypeID: smp.ArchetypeID,
			Distance:    round4(smp.Distance),
		}
	}
	return nil, out, nil
}

type oscillateInput struct {
	StateA        stateRef `json:"state_a" jsonschema:"oscillation start"`
	StateB        stateRef `json:"state_b" jsonschema:"oscillation end"`
	Pattern       string   `json:"pattern" jsonschema:"sinusoidal, triangular, or square"`
	Cycles        int      `json:"cycles" jsonschema:"number of waveform periods"`
	StepsPerCycle int      `json:"steps_per_cycle" jsonschema:"samples per period"`
	PhaseOffset   float64  `json:"phase_offset,omitempty" jsonschema:"rotates the blend sequence by floor(offset*steps_per_cycle) positions"`
}

type oscillateOutput struct {
	Pattern    string    `json:"pattern"`
	TotalSteps int       `json:"total_steps"`
	Steps      []stepOut `json:"steps"`
}

func (s *Server) handleOscillate(ctx context.Context, _ *sdkmcp.CallToolRequest, input oscillateInput) (*sdkmcp.CallToolResult, oscillateOutput, error) {
	a, err := s.resolveState(input.StateA)
	if err != nil {
		return nil, oscillateOutput{}, fmt.Errorf("state_a: %w", err)
	}
	b, err := s.resolveState(input.StateB)
	if err != nil {
		return nil, oscillateOutput{}, fmt.Errorf("state_b: %w", err)
	}
	pattern, err := morphospace.ParsePattern(input.Pattern)
	if err != nil {
		return nil, oscillateOutput{}, err
	}
	steps, err := morphospace.GenerateSequence(a, b, pattern, input.Cycles, input.StepsPerCycle, input.PhaseOffset)
	if err != nil {
		return nil, oscillateOutput{}, err
	}
	return nil, oscillateOutput{
		Pattern:    pattern.String(),
		TotalSteps: len(steps),
		Steps:      stepsOut(steps),
	}, nil
}

type runPresetInput struct {
	PresetID string `json:"preset_id" jsonschema:"curated preset id"`
}

type runPresetOutput struct {
	PresetID   string    `json:"preset_id"`
	Pattern    string    `json:"pattern"`
	TotalSteps int       `json:"total_steps"`
	Steps      []stepOut `json:"steps"`
}

func (s *Server) handleRunPreset(ctx context.Context, _ *sdkmcp.CallToolRequest, input runPresetInput) (*sdkmcp.CallToolResult, runPresetOutput, error) {
	preset, err := s.registry.Preset(input.PresetID)
	if err != nil {
		return nil, runPresetOutput{}, err
	}
	steps, err := s.registry.RunPreset(input.PresetID)
	if err != nil {
		return nil, runPresetOutput{}, err
	}
	return nil, runPresetOutput{
		PresetID:   preset.ID,
		Pattern:    preset.Pattern.String(),
		TotalSteps: len(steps),
		Steps:      stepsOut(steps),
	}, nil
}

type extractKeyframesInput struct {
	PresetID string `json:"preset_id" jsonschema:"curated preset id"`
	Count    int    `json:"count" jsonschema:"number of keyframes to extract"`
}

type extractKeyframesOutput struct {
	PresetID  string    `json:"preset_id"`
	Keyframes []stepOut `json:"keyframes"`
}

func (s *Server) handleExtractKeyframes(ctx context.Context, _ *sdkmcp.CallToolRequest, input extractKeyframesInput) (*sdkmcp.CallToolResult, extractKeyframesOutput, error) {
	steps, err := s.registry.RunPreset(input.PresetID)
	if err != nil {
		return nil, extractKeyframesOutput{}, err
	}
	frames, err := morphospace.ExtractKeyframes(steps, input.Count)
	if err != nil {
		return nil, extractKeyframesOutput{}, err
	}
	return nil, extractKeyframesOutput{
		PresetID:  input.PresetID,
		Keyframes: stepsOut(frames),
	}, nil
}

type vocabularyForInput struct {
	ArchetypeID string    `json:"archetype_id,omitempty" jsonschema:"archetype whose descriptor bundle to weight"`
	State       *stateRef `json:"state,omitempty" jsonschema:"state to classify to its nearest archetype instead of naming one"`
	Intensity   string    `json:"intensity,omitempty" jsonschema:"subtle, moderate (default), or dramatic"`
	Emphasis    string    `json:"emphasis,omitempty" jsonschema:"none (default), color, texture, structure, or atmosphere"`
}

type weightedKeywordOut struct {
	Keyword string  `json:"keyword"`
	Weight  float64 `json:"weight"`
}

type vocabularyForOutput struct {
	ArchetypeID string                        `json:"archetype_id"`
	Label       string                        `json:"label"`
	Distance    float64                       `json:"distance,omitempty"`
	Keywords    []weightedKeywordOut          `json:"keywords"`
	Optics      morphospace.OpticalProperties `json:"optics"`
}

func (s *Server) handleVocabularyFor(ctx context.Context, _ *sdkmcp.CallToolRequest, input vocabularyForInput) (*sdkmcp.CallToolResult, vocabularyForOutput, error) {
	intensity, err := morphospace.ParseIntensity(input.Intensity)
	if err != nil {
		return nil, vocabularyForOutput{}, err
	}
	emphasis, err := morphospace.ParseEmphasis(input.Emphasis)
	if err != nil {
		return nil, vocabularyForOutput{}, err
	}

	archetypeID := input.ArchetypeID
	var classifiedDist float64
	switch {
	case archetypeID != "" && input.State != nil:
		return nil, vocabularyForOutput{}, fmt.Errorf("%w: set archetype_id or state, not both", morphospace.ErrInvalidArgument)
	case archetypeID == "" && input.State == nil:
		return nil, vocabularyForOutput{}, fmt.Errorf("%w: archetype_id or state required", morphospace.ErrInvalidArgument)
	case input.State != nil:
		st, err := s.resolveState(*input.State)
		if err != nil {
			return nil, vocabularyForOutput{}, err
		}
		archetypeID, classifiedDist = s.registry.Nearest(st)
	}

	res, err := s.registry.Vocabulary(archetypeID, intensity, emphasis)
	if err != nil {
		return nil, vocabularyForOutput{}, err
	}

	out := vocabularyForOutput{
		ArchetypeID: res.ArchetypeID,
		Label:       res.Label,
		Distance:    round4(classifiedDist),
		Keywords:    make([]weightedKeywordOut, len(res.Keywords)),
		Optics:      res.Optics,
	}
	for i, kw := range res.Keywords {
		out.Keywords[i] = weightedKeywordOut{Keyword: kw.Keyword, Weight: round4(kw.Weight)}
	}
	return nil, out, nil
}

// --- Vocabulary composer tools ---

// profileInput is the wire form of a tasting profile. Numeric scales
// are pointers so an omitted scale takes the standard default while an
// explicit 0 survives (tannin 0 is a real value for whites).
type profileInput struct {
	Varietal      string   `json:"varietal" jsonschema:"grape varietal id"`
	Climate       string   `json:"climate,omitempty" jsonschema:"cool, moderate (default), warm, or hot"`
	Style         string   `json:"style,omitempty" jsonschema:"old_world (default) or new_world"`
	Oak           string   `json:"oak,omitempty" jsonschema:"none, neutral, french_oak (default), american_oak, or mixed_oak"`
	Age           string   `json:"age,omitempty" jsonschema:"youthful, developing (default), mature, or past_prime"`
	Acidity       *float64 `json:"acidity,omitempty" jsonschema:"1-10 scale, default 5"`
	Tannin        *float64 `json:"tannin,omitempty" jsonschema:"1-10 scale, default 5"`
	Sweetness     *float64 `json:"sweetness,omitempty" jsonschema:"1-10 scale, default 2"`
	Alcohol       *float64 `json:"alcohol,omitempty" jsonschema:"1-10 scale, default 6"`
	Body          *float64 `json:"body,omitempty" jsonschema:"1-10 scale, default 6"`
	FinishLength  string   `json:"finish_length,omitempty" jsonschema:"short, medium (default), long, or very_long"`
	PrimaryAromas []string `json:"primary_aromas,omitempty" jsonschema:"individual aroma notes to build the palette from"`
}

func (p profileInput) toProfile() vocabulary.Profile {
	def := vocabulary.DefaultProfile()
	scale := func(v *float64, fallback float64) float64 {
		if v != nil {
			return *v
		}
		return fallback
	}
	return vocabulary.Profile{
		Varietal:      p.Varietal,
		Climate:       p.Climate,
		Style:         p.Style,
		Oak:           p.Oak,
		Age:           p.Age,
		Acidity:       scale(p.Acidity, def.Acidity),
		Tannin:        scale(p.Tannin, def.Tannin),
		Sweetness:     scale(p.Sweetness, def.Sweetness),
		Alcohol:       scale(p.Alcohol, def.Alcohol),
		Body:          scale(p.Body, def.Body),
		FinishLength:  p.FinishLength,
		PrimaryAromas: p.PrimaryAromas,
	}
}

type generateVocabularyOutput struct {
	Vocabulary *vocabulary.VisualVocabulary `json:"visual_vocabulary"`
}

func (s *Server) handleGenerateVocabulary(ctx context.Context, _ *sdkmcp.CallToolRequest, input profileInput) (*sdkmcp.CallToolResult, generateVocabularyOutput, error) {
	v, err := s.tables.Compose(input.toProfile())
	if err != nil {
		return nil, generateVocabularyOutput{}, err
	}
	return nil, generateVocabularyOutput{Vocabulary: v}, nil
}

type regionalPresetInput struct {
	Region string `json:"region" jsonschema:"classic region id, e.g. mosel_riesling or napa_cabernet"`
}

type regionalPresetOutput struct {
	Region     string                       `json:"region"`
	Profile    vocabulary.Profile           `json:"profile"`
	Vocabulary *vocabulary.VisualVocabulary `json:"visual_vocabulary"`
}

func (s *Server) handleRegionalPreset(ctx context.Context, _ *sdkmcp.CallToolRequest, input regionalPresetInput) (*sdkmcp.CallToolResult, regionalPresetOutput, error) {
	profile, err := s.tables.Region(input.Region)
	if err != nil {
		return nil, regionalPresetOutput{}, err
	}
	v, err := s.tables.Compose(profile)
	if err != nil {
		return nil, regionalPresetOutput{}, err
	}
	v.RegionalPreset = input.Region
	return nil, regionalPresetOutput{Region: input.Region, Profile: profile, Vocabulary: v}, nil
}

type evolutionOutput struct {
	Sequence *vocabulary.EvolutionSequence `json:"sequence"`
}

func (s *Server) handleEvolution(ctx context.Context, _ *sdkmcp.CallToolRequest, input profileInput) (*sdkmcp.CallToolResult, evolutionOutput, error) {
	seq, err := s.tables.Evolution(input.toProfile())
	if err != nil {
		return nil, evolutionOutput{}, err
	}
	return nil, evolutionOutput{Sequence: seq}, nil
}

type compareInput struct {
	Wine1 profileInput `json:"wine1" jsonschema:"first tasting profile"`
	Wine2 profileInput `json:"wine2" jsonschema:"second tasting profile"`
}

type compareOutput struct {
	Comparison *vocabulary.Comparison `json:"comparison"`
}

func (s *Server) handleCompare(ctx context.Context, _ *sdkmcp.CallToolRequest, input compareInput) (*sdkmcp.CallToolResult, compareOutput, error) {
	cmp, err := s.tables.Compare(input.Wine1.toProfile(), input.Wine2.toProfile())
	if err != nil {
		return nil, compareOutput{}, err
	}
	return nil, compareOutput{Comparison: cmp}, nil
}

// --- Listings ---

type listVarietalsInput struct{}

type listVarietalsOutput struct {
	Varietals []string `json:"varietals"`
}

func (s *Server) handleListVarietals(ctx context.Context, _ *sdkmcp.CallToolRequest, _ listVarietalsInput) (*sdkmcp.CallToolResult, listVarietalsOutput, error) {
	return nil, listVarietalsOutput{Varietals: s.tables.VarietalIDs()}, nil
}

type listAromasInput struct{}

type aromaClusterOut struct {
	Cluster string   `json:"cluster"`
	Notes   []string `json:"notes"`
}

type listAromasOutput struct {
	Clusters []aromaClusterOut `json:"clusters"`
}

func (s *Server) handleListAromas(ctx context.Context, _ *sdkmcp.CallToolRequest, _ listAromasInput) (*sdkmcp.CallToolResult, listAromasOutput, error) {
	clusters := s.tables.AromaClusters()
	out := listAromasOutput{Clusters: make([]aromaClusterOut, 0, len(clusters))}
	for _, id := range s.tables.AromaClusterIDs() {
		out.Clusters = append(out.Clusters, aromaClusterOut{Cluster: id, Notes: clusters[id].Notes})
	}
	return nil, out, nil
}

type listRegistryInput struct{}

type listRegistryOutput struct {
	States     []string `json:"states"`
	Archetypes []string `json:"archetypes"`
	Presets    []string `json:"presets"`
	Regions    []string `json:"regions"`
}

func (s *Server) handleListRegistry(ctx context.Context, _ *sdkmcp.CallToolRequest, _ listRegistryInput) (*sdkmcp.CallToolResult, listRegistryOutput, error) {
	logger := logging.New("mcp")
	out := listRegistryOutput{
		States:     s.registry.StateIDs(),
		Archetypes: s.registry.ArchetypeIDs(),
		Presets:    s.registry.PresetIDs(),
		Regions:    s.tables.RegionIDs(),
	}
	logger.Debug("registry listed",
		"states", len(out.States), "archetypes", len(out.Archetypes), "presets", len(out.Presets))
	return nil, out, nil
}
