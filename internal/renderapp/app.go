package renderapp

import (
	"context"
	"fmt"

	"github.com/specialistvlad/pipegraph/internal/ctxlog"
	"github.com/specialistvlad/pipegraph/internal/rendergraph"
	"github.com/specialistvlad/pipegraph/internal/stage"
	"github.com/specialistvlad/pipegraph/internal/world"
)

// App is the mutable build-phase context.
type App struct {
	world *world.World
	graph *rendergraph.Graph
}

// New creates an App over the given world and graph. Nil arguments are
// replaced by empty ones.
func New(w *world.World, g *rendergraph.Graph) *App {
	if w == nil {
		w = world.New()
	}
	if g == nil {
		g = rendergraph.New()
	}
	return &App{world: w, graph: g}
}

// World returns the shared world stages are constructed from.
func (a *App) World() *world.World {
	return a.world
}

// Graph returns the render graph being assembled.
func (a *App) Graph() *rendergraph.Graph {
	return a.graph
}

// AddSubGraph creates an empty sub-graph. Re-adding an existing name keeps the
// existing sub-graph and its contents and logs a warning.
func (a *App) AddSubGraph(ctx context.Context, name string) *App {
	logger := ctxlog.FromContext(ctx)
	if _, created := a.graph.AddSubGraph(name); !created {
		logger.Warn("Sub-graph already exists, keeping the existing one.", "sub_graph", name)
		return a
	}
	logger.Debug("Sub-graph added.", "sub_graph", name)
	return a
}

// AddNode inserts an already constructed stage under label. A missing
// sub-graph is a warning and no-op; a duplicate label is returned as
// *rendergraph.DuplicateLabelError.
func (a *App) AddNode(ctx context.Context, subGraph, label string, s stage.Stage) error {
	logger := ctxlog.FromContext(ctx)
	sg, ok := a.graph.SubGraph(subGraph)
	if !ok {
		logger.Warn("Tried adding a render graph node but the sub-graph doesn't exist.", "sub_graph", subGraph, "label", label)
		return nil
	}
	if err := sg.AddNode(label, s); err != nil {
		return err
	}
	logger.Debug("Node added.", "sub_graph", subGraph, "label", label, "stage", stage.Name(s))
	return nil
}

// AddNodeOf constructs a stage through f and inserts it under label. The
// stage is only constructed when the sub-graph exists.
func (a *App) AddNodeOf(ctx context.Context, subGraph, label string, f stage.Factory) error {
	if _, ok := a.graph.SubGraph(subGraph); !ok {
		ctxlog.FromContext(ctx).Warn("Tried adding a render graph node but the sub-graph doesn't exist.", "sub_graph", subGraph, "label", label)
		return nil
	}
	s, err := f.Construct(ctx, a.world)
	if err != nil {
		return fmt.Errorf("sub-graph %q, node %q: %w", subGraph, label, err)
	}
	return a.AddNode(ctx, subGraph, label, s)
}

// AddEdges adds a directed edge between each consecutive pair of labels.
func (a *App) AddEdges(ctx context.Context, subGraph string, labels []string) *App {
	logger := ctxlog.FromContext(ctx)
	sg, ok := a.graph.SubGraph(subGraph)
	if !ok {
		logger.Warn("Tried adding render graph edges but the sub-graph doesn't exist.", "sub_graph", subGraph, "labels", labels)
		return a
	}
	sg.AddEdges(labels)
	logger.Debug("Edges added.", "sub_graph", subGraph, "labels", labels)
	return a
}

// AddEdge adds a single directed edge from -> to.
func (a *App) AddEdge(ctx context.Context, subGraph, from, to string) *App {
	logger := ctxlog.FromContext(ctx)
	sg, ok := a.graph.SubGraph(subGraph)
	if !ok {
		logger.Warn("Tried adding a render graph edge but the sub-graph doesn't exist.", "sub_graph", subGraph, "from", from, "to", to)
		return a
	}
	sg.AddEdge(from, to)
	logger.Debug("Edge added.", "sub_graph", subGraph, "from", from, "to", to)
	return a
}
