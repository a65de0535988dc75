package registry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/specialistvlad/pipegraph/internal/config"
	"github.com/specialistvlad/pipegraph/internal/ctxlog"
	"github.com/specialistvlad/pipegraph/internal/renderapp"
)

// Plugin is the interface that all render-graph plugins must implement to be
// registered.
type Plugin interface {
	// Name is the unique plugin name. It is also the key of the plugin's
	// section in the configuration model.
	Name() string
	// Build mutates the render graph.
	Build(ctx context.Context, app *renderapp.App, cfg *config.Model) error
}

// Registry holds all the registered plugins for a single application instance.
type Registry struct {
	plugins []Plugin
	byName  map[string]Plugin
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{byName: make(map[string]Plugin)}
}

// Register adds a plugin. Registering the same name twice is a programming
// error and panics.
func (r *Registry) Register(p Plugin) {
	name := p.Name()
	if name == "" {
		panic("plugin name must not be empty")
	}
	if _, exists := r.byName[name]; exists {
		panic(fmt.Sprintf("plugin with name '%s' already registered", name))
	}
	slog.Debug("Registering plugin.", "name", name)
	r.byName[name] = p
	r.plugins = append(r.plugins, p)
}

// Plugin returns the plugin registered under name.
func (r *Registry) Plugin(name string) (Plugin, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// Names returns plugin names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.plugins))
	for i, p := range r.plugins {
		names[i] = p.Name()
	}
	return names
}

// Select returns the registered plugins whose names are in only, preserving
// registration order. An empty only selects every plugin. Unknown names are
// reported together as one error.
func (r *Registry) Select(only []string) ([]Plugin, error) {
	if len(only) == 0 {
		return append([]Plugin(nil), r.plugins...), nil
	}

	wanted := make(map[string]bool, len(only))
	var unknown []string
	for _, name := range only {
		if _, ok := r.byName[name]; !ok {
			unknown = append(unknown, name)
			continue
		}
		wanted[name] = true
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown plugins: %s (registered: %s)",
			strings.Join(unknown, ", "), strings.Join(r.Names(), ", "))
	}

	var selected []Plugin
	for _, p := range r.plugins {
		if wanted[p.Name()] {
			selected = append(selected, p)
		}
	}
	return selected, nil
}

// Build runs Build on every given plugin in order and stops at the first
// error.
func Build(ctx context.Context, plugins []Plugin, app *renderapp.App, cfg *config.Model) error {
	logger := ctxlog.FromContext(ctx)
	for _, p := range plugins {
		pctx := ctxlog.With(ctx, "plugin", p.Name())
		logger.Debug("Building plugin.", "plugin", p.Name())
		if err := p.Build(pctx, app, cfg); err != nil {
			return fmt.Errorf("plugin '%s': %w", p.Name(), err)
		}
	}
	logger.Debug("All plugins built.", "count", len(plugins))
	return nil
}

// Module is implemented by packages that contribute one or more plugins.
type Module interface {
	Register(r *Registry)
}
