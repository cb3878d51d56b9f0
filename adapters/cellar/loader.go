// Package cellar loads the static morphospace registries (canonical
// states, visual archetypes, and curated presets) from YAML files
// embedded at build time. The registry is constructed once at process
// start and injected into the engine; nothing here mutates after Load.
package cellar

import (
	"embed"
	"fmt"

	"vinomorph/pkg/morphospace"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var registryFS embed.FS

type statesFile struct {
	States map[string]struct {
		Label       string             `yaml:"label"`
		Coordinates map[string]float64 `yaml:"coordinates"`
	} `yaml:"states"`
}

type archetypesFile struct {
	Archetypes []struct {
		ID       string                        `yaml:"id"`
		Label    string                        `yaml:"label"`
		Anchor   map[string]float64            `yaml:"anchor"`
		Keywords []string                      `yaml:"keywords"`
		Optics   morphospace.OpticalProperties `yaml:"optics"`
	} `yaml:"archetypes"`
}

type presetsFile struct {
	Presets []struct {
		ID            string `yaml:"id"`
		StateA        string `yaml:"state_a"`
		StateB        string `yaml:"state_b"`
		Pattern       string `yaml:"pattern"`
		Cycles        int    `yaml:"cycles"`
		StepsPerCycle int    `yaml:"steps_per_cycle"`
		Label         string `yaml:"label"`
	} `yaml:"presets"`
}

// Load parses the embedded registry files and returns the validated,
// immutable registry the engine runs against.
func Load() (*morphospace.Registry, error) {
	var sf statesFile
	if err := readYAML("states.yaml", &sf); err != nil {
		return nil, err
	}
	states := make(map[string]morphospace.State, len(sf.States))
	for id, raw := range sf.States {
		s, err := morphospace.NewState(raw.Coordinates)
		if err != nil {
			return nil, fmt.Errorf("state %q: %w", id, err)
		}
		states[id] = s
	}

	var af archetypesFile
	if err := readYAML("archetypes.yaml", &af); err != nil {
		return nil, err
	}
	archetypes := make([]morphospace.Archetype, 0, len(af.Archetypes))
	for _, raw := range af.Archetypes {
		anchor, err := morphospace.NewState(raw.Anchor)
		if err != nil {
			return nil, fmt.Errorf("archetype %q: %w", raw.ID, err)
		}
		archetypes = append(archetypes, morphospace.Archetype{
			ID:       raw.ID,
			Anchor:   anchor,
			Keywords: raw.Keywords,
			Optics:   raw.Optics,
			Label:    raw.Label,
		})
	}

	var pf presetsFile
	if err := readYAML("presets.yaml", &pf); err != nil {
		return nil, err
	}
	presets := make([]morphospace.Preset, 0, len(pf.Presets))
	for _, raw := range pf.Presets {
		pattern, err := morphospace.ParsePattern(raw.Pattern)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", raw.ID, err)
		}
		presets = append(presets, morphospace.Preset{
			ID:            raw.ID,
			StateA:        raw.StateA,
			StateB:        raw.StateB,
			Pattern:       pattern,
			Cycles:        raw.Cycles,
			StepsPerCycle: raw.StepsPerCycle,
			Label:         raw.Label,
		})
	}

	return morphospace.NewRegistry(states, archetypes, presets)
}

func readYAML(name string, out any) error {
	data, err := registryFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read registry file %q: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse registry file %q: %w", name, err)
	}
	return nil
}
