package pipeline

import (
	"context"
	"fmt"

	"github.com/specialistvlad/pipegraph/internal/ctxlog"
	"github.com/specialistvlad/pipegraph/internal/renderapp"
	"github.com/specialistvlad/pipegraph/internal/rendergraph"
	"github.com/specialistvlad/pipegraph/internal/settings"
	"github.com/specialistvlad/pipegraph/internal/stage"
)

// Sequence is an ordered list of Nodes ready to be inserted into a sub-graph.
// labels[i] is always nodes[i].Label().
type Sequence struct {
	subGraph string
	nodes    []Node
	labels   []string
}

// NewSequence creates a Sequence owned by subGraph from nodes, unfiltered.
func NewSequence(subGraph string, nodes []Node) Sequence {
	owned := make([]Node, len(nodes))
	copy(owned, nodes)
	return Sequence{subGraph: subGraph, nodes: owned, labels: Labels(owned)}
}

// Build filters catalogue through in, keeping each node whose label is not
// disabled, in catalogue order.
func Build(subGraph string, catalogue []Node, in settings.Inclusion) Sequence {
	kept := make([]Node, 0, len(catalogue))
	for _, n := range catalogue {
		if in.Get(n.label) {
			kept = append(kept, n)
		}
	}
	return NewSequence(subGraph, kept)
}

// SubGraph returns the name of the sub-graph the sequence belongs to.
func (s Sequence) SubGraph() string {
	return s.subGraph
}

// Nodes returns a copy of the sequence's nodes.
func (s Sequence) Nodes() []Node {
	out := make([]Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Labels returns a copy of the sequence's labels.
func (s Sequence) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

// Len returns the number of nodes.
func (s Sequence) Len() int {
	return len(s.nodes)
}

// Contains reports whether a node labelled l is part of the sequence.
func (s Sequence) Contains(l string) bool {
	for _, have := range s.labels {
		if have == l {
			return true
		}
	}
	return false
}

// Chain returns the full edge chain: source (if not empty), then labels,
// then target (if not empty).
func Chain(source string, labels []string, target string) []string {
	chain := make([]string, 0, len(labels)+2)
	if source != "" {
		chain = append(chain, source)
	}
	chain = append(chain, labels...)
	if target != "" {
		chain = append(chain, target)
	}
	return chain
}

// Instantiate inserts every node into subGraph in order, then submits the edge
// chain source -> nodes... -> target in a single AddEdges call. Empty anchors
// are omitted.
//
// Instantiation is all or nothing: every stage is constructed and every label
// checked for duplicates before the sub-graph is touched, so a construction
// failure leaves no partial sequence behind. If subGraph does not exist, the
// app logs its usual warnings and nothing is constructed.
func (s Sequence) Instantiate(ctx context.Context, app *renderapp.App, subGraph, source, target string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Instantiating pipeline sequence.", "sub_graph", subGraph, "labels", s.labels, "source", source, "target", target)

	sg, ok := app.Graph().SubGraph(subGraph)
	if !ok {
		for _, n := range s.nodes {
			if err := n.Insert(ctx, app, subGraph); err != nil {
				return err
			}
		}
		app.AddEdges(ctx, subGraph, Chain(source, s.labels, target))
		return nil
	}

	seen := make(map[string]struct{}, len(s.labels))
	for _, l := range s.labels {
		if _, dup := seen[l]; dup || sg.HasNode(l) {
			return fmt.Errorf("failed to instantiate pipeline into sub-graph %q: %w", subGraph, &rendergraph.DuplicateLabelError{SubGraph: subGraph, Label: l})
		}
		seen[l] = struct{}{}
	}

	built := make([]stage.Stage, len(s.nodes))
	for i, n := range s.nodes {
		st, err := n.stageFactory().Construct(ctx, app.World())
		if err != nil {
			return fmt.Errorf("failed to instantiate pipeline into sub-graph %q, node %q: %w", subGraph, n.label, err)
		}
		built[i] = st
	}

	for i, n := range s.nodes {
		if err := app.AddNode(ctx, subGraph, n.label, built[i]); err != nil {
			return fmt.Errorf("failed to instantiate pipeline into sub-graph %q: %w", subGraph, err)
		}
	}
	app.AddEdges(ctx, subGraph, Chain(source, s.labels, target))
	logger.Debug("Pipeline sequence instantiated.", "sub_graph", subGraph, "nodes", len(s.nodes))
	return nil
}

// InsertInto instantiates the sequence into its own sub-graph between the
// given anchors.
func (s Sequence) InsertInto(ctx context.Context, app *renderapp.App, source, target string) error {
	return s.Instantiate(ctx, app, s.subGraph, source, target)
}

// CreateNewSubGraph adds the sub-graph name and instantiates the sequence into
// it without anchors.
func (s Sequence) CreateNewSubGraph(ctx context.Context, app *renderapp.App, name string) error {
	app.AddSubGraph(ctx, name)
	return s.Instantiate(ctx, app, name, "", "")
}

// Create is CreateNewSubGraph for the sequence's own sub-graph.
func (s Sequence) Create(ctx context.Context, app *renderapp.App) error {
	return s.CreateNewSubGraph(ctx, app, s.subGraph)
}
