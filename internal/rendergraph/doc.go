// Package rendergraph is the host execution graph that pipelines are
// assembled into.
//
// A Graph is a set of named sub-graphs. Each SubGraph stores constructed
// stages keyed by label and the directed edges between them. The package only
// records structure; scheduling and execution are done elsewhere.
//
// # Edges and anchors
//
// Edges are recorded as given and resolved when the graph is validated, after
// every plugin has contributed. An endpoint resolves if it names a node in the
// same sub-graph, or if it is a qualified anchor `sub_graph.label` naming a
// node in another sub-graph. Cycles are detected per sub-graph only.
//
// # Lifecycle
//
//  1. **Created** empty at the start of the build phase
//  2. **Populated** through renderapp.App by plugins, exactly once per sub-graph
//  3. **Validated** once all plugins are built (Graph.Validate)
//  4. **Read-only** afterward, e.g. for reporting
//
// The graph is not safe for concurrent mutation.
package rendergraph
