package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/specialistvlad/pipegraph/internal/config"
	"github.com/specialistvlad/pipegraph/internal/ctxlog"
	"github.com/specialistvlad/pipegraph/internal/registry"
	"github.com/specialistvlad/pipegraph/internal/renderapp"
	"github.com/specialistvlad/pipegraph/internal/report"
	"github.com/specialistvlad/pipegraph/internal/stages"
	"github.com/specialistvlad/pipegraph/internal/world"
)

// Result is the outcome of a successful build.
type Result struct {
	BuildID string
	App     *renderapp.App
	Config  *config.Model
}

// Build runs the build phase: it loads configuration, applies command-line
// overrides, runs the selected plugins against a fresh world and render
// graph, and validates the result. The first error aborts the build.
func (a *App) Build(ctx context.Context) (*Result, error) {
	buildID := uuid.NewString()
	ctx = ctxlog.With(a.Context(ctx), "build_id", buildID)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build started.", "config_paths", a.config.ConfigPaths)

	model, err := config.LoadAll(ctx, a.loaders, a.config.ConfigPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	model.ApplyOverrides(a.config.Overrides)

	plugins, err := a.registry.Select(a.config.Plugins)
	if err != nil {
		return nil, err
	}
	for _, name := range model.Names() {
		if _, ok := a.registry.Plugin(name); !ok {
			logger.Warn("Configuration for unknown pipeline ignored.", "pipeline", name, "source", model.Pipeline(name).Source)
		}
	}

	w := world.New()
	stages.InsertDefaults(w)
	rapp := renderapp.New(w, nil)

	if err := registry.Build(ctx, plugins, rapp, model); err != nil {
		return nil, fmt.Errorf("failed to build render graph: %w", err)
	}
	if err := rapp.Graph().Validate(); err != nil {
		return nil, err
	}

	logger.Info("Render graph built.", "sub_graphs", len(rapp.Graph().SubGraphs()), "plugins", len(plugins))
	return &Result{BuildID: buildID, App: rapp, Config: model}, nil
}

// Run builds the render graph and writes its report to the output writer.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("App.Run method started.")

	res, err := a.Build(ctx)
	if err != nil {
		return err
	}
	if err := a.Report(res); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// Report writes the report of a finished build in the configured format.
func (a *App) Report(res *Result) error {
	rep, err := report.New(res.App.Graph(), res.BuildID)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	if err := rep.Write(a.outW, a.config.Format); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
