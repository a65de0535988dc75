package rendergraph

import (
	"fmt"
	"strings"
)

// Validate checks every sub-graph for edges whose endpoints cannot be
// resolved and for cycles. All problems are reported together in a
// *ValidationError.
func (g *Graph) Validate() error {
	var problems []string

	for _, sg := range g.SubGraphs() {
		for _, e := range sg.edges {
			if !g.resolve(sg, e.From) {
				problems = append(problems, fmt.Sprintf("sub-graph '%s': edge %s references unknown node '%s'", sg.name, e, e.From))
			}
			if !g.resolve(sg, e.To) {
				problems = append(problems, fmt.Sprintf("sub-graph '%s': edge %s references unknown node '%s'", sg.name, e, e.To))
			}
		}
		if cycle := sg.findCycle(); cycle != nil {
			problems = append(problems, fmt.Sprintf("sub-graph '%s': cycle detected: %s", sg.name, strings.Join(cycle, " -> ")))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// successors builds the adjacency list of local edges, preserving edge order.
func (sg *SubGraph) successors() map[string][]string {
	next := make(map[string][]string, len(sg.order))
	for _, e := range sg.edges {
		next[e.From] = append(next[e.From], e.To)
	}
	return next
}

// findCycle returns the labels forming a cycle, first label repeated at the
// end, or nil if the sub-graph's edges are acyclic.
func (sg *SubGraph) findCycle() []string {
	next := sg.successors()

	// Classic depth-first search with three sets of nodes:
	// permanent: fully visited and not part of a cycle.
	// temporary: on the current recursion stack.
	permanent := make(map[string]bool)
	temporary := make(map[string]bool)
	var stack []string

	var visit func(n string) []string
	visit = func(n string) []string {
		if permanent[n] {
			return nil
		}
		if temporary[n] {
			for i, s := range stack {
				if s == n {
					return append(append([]string{}, stack[i:]...), n)
				}
			}
		}

		temporary[n] = true
		stack = append(stack, n)
		for _, succ := range next[n] {
			if cycle := visit(succ); cycle != nil {
				return cycle
			}
		}
		stack = stack[:len(stack)-1]
		delete(temporary, n)
		permanent[n] = true
		return nil
	}

	for _, e := range sg.edges {
		if cycle := visit(e.From); cycle != nil {
			return cycle
		}
	}
	return nil
}

// TopologicalOrder returns the local node labels ordered so that every edge
// points forward. Ties are broken by insertion order. Edges to nodes outside
// the sub-graph are ignored.
func (sg *SubGraph) TopologicalOrder() ([]string, error) {
	if cycle := sg.findCycle(); cycle != nil {
		return nil, fmt.Errorf("sub-graph '%s': cycle detected: %s", sg.name, strings.Join(cycle, " -> "))
	}

	inDegree := make(map[string]int, len(sg.order))
	for _, l := range sg.Labels() {
		inDegree[l] = 0
	}
	next := make(map[string][]string)
	for _, e := range sg.edges {
		if !sg.HasNode(e.From) || !sg.HasNode(e.To) {
			continue
		}
		next[e.From] = append(next[e.From], e.To)
		inDegree[e.To]++
	}

	done := make(map[string]bool, len(inDegree))
	order := make([]string, 0, len(inDegree))
	for len(order) < len(inDegree) {
		progressed := false
		for _, l := range sg.Labels() {
			if done[l] || inDegree[l] > 0 {
				continue
			}
			done[l] = true
			order = append(order, l)
			for _, succ := range next[l] {
				inDegree[succ]--
			}
			progressed = true
			break
		}
		if !progressed {
			// Unreachable: findCycle already rejected cyclic graphs.
			return nil, fmt.Errorf("sub-graph '%s': unable to order nodes", sg.name)
		}
	}
	return order, nil
}
