package core2d

import (
	"context"
	"fmt"

	"github.com/specialistvlad/pipegraph/internal/config"
	"github.com/specialistvlad/pipegraph/internal/ctxlog"
	"github.com/specialistvlad/pipegraph/internal/registry"
	"github.com/specialistvlad/pipegraph/internal/renderapp"
)

// Plugin builds the core 2D sub-graph.
type Plugin struct {
	// Defaults is the base the configured settings are merged onto.
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
	return Settings{
		SubGraph: pc.SubGraphOr(p.Defaults.subGraph()),
		Stages:   p.Defaults.Stages.Merge(pc.Stages),
	}
}

// Build implements registry.Plugin.
func (p *Plugin) Build(ctx context.Context, app *renderapp.App, cfg *config.Model) error {
	s := p.Settings(cfg)
	logger := ctxlog.FromContext(ctx)

	if unknown := s.Stages.Unknown(KnownLabels()); len(unknown) > 0 {
		logger.Warn("Ignoring settings for unknown stages.", "pipeline", Name, "labels", unknown)
	}

	seq := s.NewSequence()
	if err := seq.Create(ctx, app); err != nil {
		return err
	}

	if s.Stages.Get(MsaaWriteback) && seq.Len() > 0 {
		if err := app.AddNodeOf(ctx, seq.SubGraph(), MsaaWriteback, MsaaWritebackNode().Factory()); err != nil {
			return fmt.Errorf("failed to add msaa writeback: %w", err)
		}
		app.AddEdge(ctx, seq.SubGraph(), MsaaWriteback, seq.Labels()[0])
	}

	logger.Info("Core 2D pipeline built.", "sub_graph", seq.SubGraph(), "stages", seq.Labels(), "disabled", s.Stages.Disabled())
	return nil
}
