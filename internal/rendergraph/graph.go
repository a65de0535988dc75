package rendergraph

import "github.com/specialistvlad/pipegraph/internal/nodeid"

// Graph is the top-level render graph: a collection of named sub-graphs.
type Graph struct {
	subGraphs map[string]*SubGraph
	// order keeps sub-graph creation order for deterministic iteration.
	order []string
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{subGraphs: make(map[string]*SubGraph)}
}

// AddSubGraph creates an empty sub-graph called name. If one already exists
// it is returned unchanged and created is false.
func (g *Graph) AddSubGraph(name string) (sg *SubGraph, created bool) {
	if existing, ok := g.subGraphs[name]; ok {
		return existing, false
	}
	sg = newSubGraph(name)
	g.subGraphs[name] = sg
	g.order = append(g.order, name)
	return sg, true
}

// SubGraph returns the sub-graph called name.
func (g *Graph) SubGraph(name string) (*SubGraph, bool) {
	sg, ok := g.subGraphs[name]
	return sg, ok
}

// SubGraphs returns all sub-graphs in creation order.
func (g *Graph) SubGraphs() []*SubGraph {
	out := make([]*SubGraph, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, g.subGraphs[name])
	}
	return out
}

// resolve reports whether endpoint names a node visible from sg: a local
// label, or a qualified `sub_graph.label` anchor in another sub-graph.
func (g *Graph) resolve(sg *SubGraph, endpoint string) bool {
	if sg.HasNode(endpoint) {
		return true
	}
	addr, err := nodeid.Parse(endpoint)
	if err != nil || !addr.IsQualified() {
		return false
	}
	other, exists := g.subGraphs[addr.SubGraph]
	return exists && other.HasNode(addr.Label)
}
