package core3d

import (
	"context"

	"github.com/specialistvlad/pipegraph/internal/config"
	"github.com/specialistvlad/pipegraph/internal/ctxlog"
	"github.com/specialistvlad/pipegraph/internal/pipeline"
	"github.com/specialistvlad/pipegraph/internal/registry"
	"github.com/specialistvlad/pipegraph/internal/renderapp"
)

// Plugin builds the core 3D sub-graph.
type Plugin struct {
	Defaults Settings
}

// NewPlugin returns a plugin using DefaultSettings.
func NewPlugin() *Plugin {
	return &Plugin{Defaults: DefaultSettings()}
}

// Register implements the registry.Module interface.
func (p *Plugin) Register(r *registry.Registry) {
	r.Register(p)
}

// Name implements registry.Plugin.
func (p *Plugin) Name() string { return Name }

// Settings resolves the effective settings from the configuration model.
func (p *Plugin) Settings(cfg *config.Model) Settings {
	pc := cfg.Pipeline(Name)
	def := p.Defaults.SubGraph
	if def == "" {
		def = Name
	}
	return Settings{
		SubGraph: pc.SubGraphOr(def),
		Stages:   p.Defaults.Stages.Merge(pc.Stages),
	}
}

// Build implements registry.Plugin.
func (p *Plugin) Build(ctx context.Context, app *renderapp.App, cfg *config.Model) error {
	s := p.Settings(cfg)
	logger := ctxlog.FromContext(ctx)

	if unknown := s.Stages.Unknown(pipeline.Labels(Catalogue())); len(unknown) > 0 {
		logger.Warn("Ignoring settings for unknown stages.", "pipeline", Name, "labels", unknown)
	}

	seq := s.NewSequence()
	if err := seq.Create(ctx, app); err != nil {
		return err
	}

	logger.Info("Core 3D pipeline built.", "sub_graph", seq.SubGraph(), "stages", seq.Labels(), "disabled", s.Stages.Disabled())
	return nil
}
