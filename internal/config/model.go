package config

import (
	"sort"

	"github.com/specialistvlad/pipegraph/internal/settings"
)

// Model is the unified, format-agnostic representation of the pipeline
// configuration.
type Model struct {
	Pipelines map[string]*Pipeline
}

// Pipeline is the configuration of one named pipeline (one plugin).
type Pipeline struct {
	// Name is the pipeline key, e.g. "core_2d".
	Name string
	// SubGraph overrides the name of the sub-graph the pipeline builds.
	// Empty means the plugin's default.
	SubGraph string
	// Stages is the opt-out inclusion mapping for the pipeline's stages.
	Stages settings.Inclusion
	// Source is the file the pipeline was read from, for diagnostics.
	Source string
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{Pipelines: make(map[string]*Pipeline)}
}

// Pipeline returns the configuration for name. It never returns nil: an
// unconfigured pipeline gets an empty entry, i.e. plugin defaults.
func (m *Model) Pipeline(name string) *Pipeline {
	if m != nil {
		if p, ok := m.Pipelines[name]; ok {
			return p
		}
	}
	return &Pipeline{Name: name}
}

// Names returns the configured pipeline names, sorted.
func (m *Model) Names() []string {
	names := make([]string, 0, len(m.Pipelines))
	for name := range m.Pipelines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge folds other into m. Stage settings are merged label by label, and a
// non-empty sub-graph override in other wins.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	for name, p := range other.Pipelines {
		existing, ok := m.Pipelines[name]
		if !ok {
			m.Pipelines[name] = &Pipeline{
				Name:     name,
				SubGraph: p.SubGraph,
				Stages:   p.Stages.Clone(),
				Source:   p.Source,
			}
			continue
		}
		existing.Stages = existing.Stages.Merge(p.Stages)
		if p.SubGraph != "" {
			existing.SubGraph = p.SubGraph
		}
		if p.Source != "" {
			existing.Source = p.Source
		}
	}
}

// ApplyOverrides merges per-pipeline inclusion overrides, such as those given
// on the command line, on top of the file configuration.
func (m *Model) ApplyOverrides(overrides map[string]settings.Inclusion) {
	for name, in := range overrides {
		m.Merge(&Model{Pipelines: map[string]*Pipeline{
			name: {Name: name, Stages: in, Source: "command line"},
		}})
	}
}

// SubGraphOr returns the configured sub-graph name, or def if none is set.
func (p *Pipeline) SubGraphOr(def string) string {
	if p == nil || p.SubGraph == "" {
		return def
	}
	return p.SubGraph
}
