// Package vocabulary holds the static descriptive lookup tables:
// varietal characteristics, climate and style modifiers, oak
// treatments, age transformations, aroma clusters, finish lengths, and
// regional presets. It composes them into visual vocabularies for
// image generation. The content is opaque to the morphospace engine;
// this package is the only place it is inspected.
package vocabulary

import (
	"embed"
	"fmt"
	"sort"

	"vinomorph/pkg/morphospace"

	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yaml
var tablesFS embed.FS

// Tables is the loaded, immutable set of descriptive lookup tables.
// Load it once at process start; it is safe for concurrent readers.
type Tables struct {
	varietals map[string]Varietal
	climates  map[string]Climate
	styles    map[string]Style
	oaks      map[string]Oak
	ages      map[string]Age
	finishes  map[string]Finish
	aromas    map[string]AromaCluster
	regions   map[string]Profile
}

type varietalsFile struct {
	Varietals map[string]Varietal `yaml:"varietals"`
}

type modifiersFile struct {
	Climates map[string]Climate `yaml:"climates"`
	Styles   map[string]Style   `yaml:"styles"`
	Oaks     map[string]Oak     `yaml:"oak"`
	Ages     map[string]Age     `yaml:"ages"`
	Finishes map[string]Finish  `yaml:"finishes"`
}

type aromasFile struct {
	Aromas map[string]AromaCluster `yaml:"aromas"`
}

type regionsFile struct {
	Regions map[string]Profile `yaml:"regions"`
}

// Load parses the embedded tables.
func Load() (*Tables, error) {
	var vf varietalsFile
	if err := readYAML("tables/varietals.yaml", &vf); err != nil {
		return nil, err
	}
	var mf modifiersFile
	if err := readYAML("tables/modifiers.yaml", &mf); err != nil {
		return nil, err
	}
	var af aromasFile
	if err := readYAML("tables/aromas.yaml", &af); err != nil {
		return nil, err
	}
	var rf regionsFile
	if err := readYAML("tables/regions.yaml", &rf); err != nil {
		return nil, err
	}

	t := &Tables{
		varietals: vf.Varietals,
		climates:  mf.Climates,
		styles:    mf.Styles,
		oaks:      mf.Oaks,
		ages:      mf.Ages,
		finishes:  mf.Finishes,
		aromas:    af.Aromas,
		regions:   rf.Regions,
	}
	for name, v := range t.varietals {
		if v.Type != "red" && v.Type != "white" {
			return nil, fmt.Errorf("varietal %q: type must be red or white, got %q", name, v.Type)
		}
	}
	return t, nil
}

func readYAML(name string, out any) error {
	data, err := tablesFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read table %q: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse table %q: %w", name, err)
	}
	return nil
}

// --- Lookups. Unknown keys return a NotFound carrying the valid set. ---

func (t *Tables) Varietal(name string) (Varietal, error) {
	v, ok := t.varietals[name]
	if !ok {
		return Varietal{}, &morphospace.NotFoundError{Kind: "varietal", ID: name, Valid: sortedKeys(t.varietals)}
	}
	return v, nil
}

func (t *Tables) Climate(name string) (Climate, error) {
	c, ok := t.climates[name]
	if !ok {
		return Climate{}, &morphospace.NotFoundError{Kind: "climate", ID: name, Valid: sortedKeys(t.climates)}
	}
	return c, nil
}

func (t *Tables) Style(name string) (Style, error) {
	s, ok := t.styles[name]
	if !ok {
		return Style{}, &morphospace.NotFoundError{Kind: "style", ID: name, Valid: sortedKeys(t.styles)}
	}
	return s, nil
}

func (t *Tables) Oak(name string) (Oak, error) {
	o, ok := t.oaks[name]
	if !ok {
		return Oak{}, &morphospace.NotFoundError{Kind: "oak", ID: name, Valid: sortedKeys(t.oaks)}
	}
	return o, nil
}

func (t *Tables) Age(name string) (Age, error) {
	a, ok := t.ages[name]
	if !ok {
		return Age{}, &morphospace.NotFoundError{Kind: "age", ID: name, Valid: sortedKeys(t.ages)}
	}
	return a, nil
}

func (t *Tables) Finish(name string) (Finish, error) {
	f, ok := t.finishes[name]
	if !ok {
		return Finish{}, &morphospace.NotFoundError{Kind: "finish", ID: name, Valid: sortedKeys(t.finishes)}
	}
	return f, nil
}

// Region returns the complete profile preset for a classic region.
func (t *Tables) Region(name string) (Profile, error) {
	p, ok := t.regions[name]
	if !ok {
		return Profile{}, &morphospace.NotFoundError{Kind: "region", ID: name, Valid: sortedKeys(t.regions)}
	}
	return p, nil
}

// VarietalIDs returns the varietal names, sorted.
func (t *Tables) VarietalIDs() []string { return sortedKeys(t.varietals) }

// RegionIDs returns the regional preset names, sorted.
func (t *Tables) RegionIDs() []string { return sortedKeys(t.regions) }

// AromaClusters returns all clusters keyed by name.
func (t *Tables) AromaClusters() map[string]AromaCluster {
	out := make(map[string]AromaCluster, len(t.aromas))
	for k, v := range t.aromas {
		out[k] = v
	}
	return out
}

// AromaClusterIDs returns the cluster names, sorted.
func (t *Tables) AromaClusterIDs() []string { return sortedKeys(t.aromas) }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
