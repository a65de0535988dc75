package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/pipegraph/internal/config"
	"github.com/specialistvlad/pipegraph/internal/ctxlog"
	"github.com/specialistvlad/pipegraph/internal/hcl"
	"github.com/specialistvlad/pipegraph/internal/registry"
	"github.com/specialistvlad/pipegraph/internal/yamlconfig"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	loaders  []config.Loader
	config   *Config
}

// DefaultLoaders returns the configuration loaders for every supported file
// format.
func DefaultLoaders() []config.Loader {
	return []config.Loader{hcl.NewLoader(), yamlconfig.NewLoader()}
}

// NewApp is the constructor for the main application. The report goes to
// outW and logs go to logW. Without modules the core plugins are registered;
// without loaders DefaultLoaders is used.
func NewApp(outW, logW io.Writer, cfg *Config, loaders []config.Loader, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = corePlugins()
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All plugins registered.", "plugins", reg.Names())

	if len(loaders) == 0 {
		loaders = DefaultLoaders()
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		loaders:  loaders,
		config:   cfg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Context returns ctx carrying the application's logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
