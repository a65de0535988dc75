package rendergraph

import (
	"fmt"

	"github.com/specialistvlad/pipegraph/internal/label"
	"github.com/specialistvlad/pipegraph/internal/stage"
)

// SubGraph is a named region of the render graph.
type SubGraph struct {
	name   string
	labels *label.Interner
	nodes  map[label.ID]*Node
	// order keeps node insertion order for deterministic iteration.
	order   []label.ID
	edges   []Edge
	edgeSet map[Edge]struct{}
}

func newSubGraph(name string) *SubGraph {
	return &SubGraph{
		name:    name,
		labels:  label.NewInterner(),
		nodes:   make(map[label.ID]*Node),
		edgeSet: make(map[Edge]struct{}),
	}
}

// Name returns the sub-graph name.
func (sg *SubGraph) Name() string {
	return sg.name
}

// AddNode stores s under l. Labels are unique within a sub-graph: inserting
// an existing label returns a *DuplicateLabelError and leaves the graph as is.
func (sg *SubGraph) AddNode(l string, s stage.Stage) error {
	if err := label.Validate(l); err != nil {
		return fmt.Errorf("sub-graph %q: %w", sg.name, err)
	}
	if s == nil {
		return fmt.Errorf("sub-graph %q: node %q has a nil stage", sg.name, l)
	}
	if _, exists := sg.labels.Lookup(l); exists {
		return &DuplicateLabelError{SubGraph: sg.name, Label: l}
	}

	id := sg.labels.Intern(l)
	sg.nodes[id] = &Node{ID: id, Label: l, Stage: s}
	sg.order = append(sg.order, id)
	return nil
}

// AddEdge records a directed edge. Adding the same edge twice is a no-op.
// Endpoints are not checked here; see Graph.Validate.
func (sg *SubGraph) AddEdge(from, to string) {
	e := Edge{From: from, To: to}
	if _, exists := sg.edgeSet[e]; exists {
		return
	}
	sg.edgeSet[e] = struct{}{}
	sg.edges = append(sg.edges, e)
}

// AddEdges records an edge between each consecutive pair of labels. Fewer
// than two labels produce no edges.
func (sg *SubGraph) AddEdges(labels []string) {
	for i := 1; i < len(labels); i++ {
		sg.AddEdge(labels[i-1], labels[i])
	}
}

// Node returns the node stored under l.
func (sg *SubGraph) Node(l string) (*Node, bool) {
	id, ok := sg.labels.Lookup(l)
	if !ok {
		return nil, false
	}
	n, ok := sg.nodes[id]
	return n, ok
}

// HasNode reports whether l names a node of this sub-graph.
func (sg *SubGraph) HasNode(l string) bool {
	_, ok := sg.Node(l)
	return ok
}

// Nodes returns the nodes in insertion order.
func (sg *SubGraph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(sg.order))
	for _, id := range sg.order {
		nodes = append(nodes, sg.nodes[id])
	}
	return nodes
}

// Labels returns node labels in insertion order.
func (sg *SubGraph) Labels() []string {
	labels := make([]string, 0, len(sg.order))
	for _, id := range sg.order {
		labels = append(labels, sg.nodes[id].Label)
	}
	return labels
}

// Edges returns the edges in the order they were added.
func (sg *SubGraph) Edges() []Edge {
	edges := make([]Edge, len(sg.edges))
	copy(edges, sg.edges)
	return edges
}

// HasEdge reports whether the edge from -> to was recorded.
func (sg *SubGraph) HasEdge(from, to string) bool {
	_, ok := sg.edgeSet[Edge{From: from, To: to}]
	return ok
}

// Len returns the number of nodes.
func (sg *SubGraph) Len() int {
	return sg.labels.Len()
}
