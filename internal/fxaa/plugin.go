package fxaa

import (
	"context"
	"fmt"

	"github.com/specialistvlad/pipegraph/internal/config"
	"github.com/specialistvlad/pipegraph/internal/core2d"
	"github.com/specialistvlad/pipegraph/internal/core3d"
	"github.com/specialistvlad/pipegraph/internal/ctxlog"
	"github.com/specialistvlad/pipegraph/internal/pipeline"
	"github.com/specialistvlad/pipegraph/internal/registry"
	"github.com/specialistvlad/pipegraph/internal/renderapp"
	"github.com/specialistvlad/pipegraph/internal/stages"
)

const (
	// Name is the plugin name and the configuration key.
	Name = "fxaa"
	// Label is the label of the spliced stage.
	Label = "fxaa"
)

// Target describes where the stage is spliced into one pipeline.
type Target struct {
	// Pipeline is the configuration key of the target pipeline. Its
	// sub_graph override, if any, names the sub-graph.
	Pipeline string
	// Sources are candidate source anchors; the first one present in the
	// sub-graph is used.
	Sources []string
	// Sink is the target anchor.
	Sink string
}

// DefaultTargets splices after tonemapping in both core pipelines, falling
// back to the end of the main pass when tonemapping is disabled.
func DefaultTargets() []Target {
	return []Target{
		{
			Pipeline: core2d.Name,
			Sources:  []string{core2d.Tonemapping, core2d.MainPass},
			Sink:     core2d.EndMainPassPostProcessing,
		},
		{
			Pipeline: core3d.Name,
			Sources:  []string{core3d.Tonemapping, core3d.EndMainPass},
			Sink:     core3d.EndMainPassPostProcessing,
		},
	}
}

// Node is the FXAA stage declaration.
func Node() pipeline.Node {
	return pipeline.Declare("Fxaa", stages.FxaaFactory())
}

// Plugin splices FXAA into each enabled target.
type Plugin struct {
	Targets []Target
}

// NewPlugin returns a plugin splicing into DefaultTargets.
func NewPlugin() *Plugin {
	return &Plugin{Targets: DefaultTargets()}
}

// Register implements the registry.Module interface.
func (p *Plugin) Register(r *registry.Registry) {
	r.Register(p)
}

// Name implements registry.Plugin.
func (p *Plugin) Name() string { return Name }

// Build implements registry.Plugin. Targets can be switched off by pipeline
// name in the fxaa stages section.
func (p *Plugin) Build(ctx context.Context, app *renderapp.App, cfg *config.Model) error {
	logger := ctxlog.FromContext(ctx)
	in := cfg.Pipeline(Name).Stages

	known := make([]string, len(p.Targets))
	for i, t := range p.Targets {
		known[i] = t.Pipeline
	}
	if unknown := in.Unknown(known); len(unknown) > 0 {
		logger.Warn("Ignoring settings for unknown pipelines.", "pipeline", Name, "labels", unknown)
	}

	for _, t := range p.Targets {
		if !in.Get(t.Pipeline) {
			logger.Debug("FXAA disabled for pipeline.", "target", t.Pipeline)
			continue
		}
		if err := p.splice(ctx, app, cfg, t); err != nil {
			return fmt.Errorf("failed to splice fxaa into %s: %w", t.Pipeline, err)
		}
	}
	return nil
}

func (p *Plugin) splice(ctx context.Context, app *renderapp.App, cfg *config.Model, t Target) error {
	logger := ctxlog.FromContext(ctx)
	subGraph := cfg.Pipeline(t.Pipeline).SubGraphOr(t.Pipeline)
	seq := pipeline.NewSequence(subGraph, []pipeline.Node{Node()})

	sg, ok := app.Graph().SubGraph(subGraph)
	if !ok {
		// Let the mutation API report the missing sub-graph.
		return seq.Instantiate(ctx, app, subGraph, "", "")
	}

	source := ""
	for _, s := range t.Sources {
		if sg.HasNode(s) {
			source = s
			break
		}
	}
	sink := t.Sink
	if !sg.HasNode(sink) {
		logger.Warn("FXAA sink anchor not in sub-graph, leaving it unanchored.", "sub_graph", subGraph, "sink", sink)
		sink = ""
	}
	if source == "" {
		logger.Warn("No FXAA source anchor in sub-graph, leaving it unanchored.", "sub_graph", subGraph, "candidates", t.Sources)
	}

	if err := seq.Instantiate(ctx, app, subGraph, source, sink); err != nil {
		return err
	}
	logger.Info("FXAA spliced.", "sub_graph", subGraph, "source", source, "sink", sink)
	return nil
}
