package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/pipegraph/internal/nodeid"
	"github.com/specialistvlad/pipegraph/internal/rendergraph"
	"github.com/specialistvlad/pipegraph/internal/stage"
	"gopkg.in/yaml.v3"
)

// Format is an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatDOT  Format = "dot"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatDOT}

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("unknown output format %q, expected one of: %s", s, strings.Join(names, ", "))
}

// Report is a serializable snapshot of a render graph.
type Report struct {
	BuildID   string     `json:"build_id" yaml:"build_id"`
	SubGraphs []SubGraph `json:"sub_graphs" yaml:"sub_graphs"`
}

type SubGraph struct {
	Name  string `json:"name" yaml:"name"`
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges"`
	// Order is a topological order of the nodes.
	Order []string `json:"order" yaml:"order"`
}

type Node struct {
	Label string `json:"label" yaml:"label"`
	Stage string `json:"stage" yaml:"stage"`
}

type Edge struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// New takes a snapshot of g. It fails if a sub-graph cannot be ordered,
// which only happens for graphs that did not pass Validate.
func New(g *rendergraph.Graph, buildID string) (*Report, error) {
	r := &Report{BuildID: buildID, SubGraphs: []SubGraph{}}
	for _, sg := range g.SubGraphs() {
		order, err := sg.TopologicalOrder()
		if err != nil {
			return nil, err
		}
		out := SubGraph{Name: sg.Name(), Nodes: []Node{}, Edges: []Edge{}, Order: order}
		for _, n := range sg.Nodes() {
			out.Nodes = append(out.Nodes, Node{Label: n.Label, Stage: stage.Name(n.Stage)})
		}
		for _, e := range sg.Edges() {
			out.Edges = append(out.Edges, Edge{From: e.From, To: e.To})
		}
		r.SubGraphs = append(r.SubGraphs, out)
	}
	return r, nil
}

// Write renders r to w in format f.
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatText:
		return r.writeText(w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatDOT:
		return r.writeDOT(w)
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

func (r *Report) writeText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "build %s\n", r.BuildID)
	for _, sg := range r.SubGraphs {
		fmt.Fprintf(&b, "\nsub-graph %s (%d nodes, %d edges)\n", sg.Name, len(sg.Nodes), len(sg.Edges))
		stages := make(map[string]string, len(sg.Nodes))
		for _, n := range sg.Nodes {
			stages[n.Label] = n.Stage
		}
		for i, l := range sg.Order {
			fmt.Fprintf(&b, "  %d. %s <%s>\n", i+1, l, stages[l])
		}
		if len(sg.Edges) > 0 {
			b.WriteString("  edges:\n")
			for _, e := range sg.Edges {
				fmt.Fprintf(&b, "    %s -> %s\n", e.From, e.To)
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Report) writeDOT(w io.Writer) error {
	var b strings.Builder
	b.WriteString("digraph render_graph {\n  rankdir=LR;\n")
	for _, sg := range r.SubGraphs {
		fmt.Fprintf(&b, "  subgraph %q {\n    label=%q;\n", "cluster_"+sg.Name, sg.Name)
		for _, n := range sg.Nodes {
			fmt.Fprintf(&b, "    %q [label=%q];\n", qualify(sg.Name, n.Label), n.Label)
		}
		b.WriteString("  }\n")
	}
	// Edges after the clusters so cross-sub-graph anchors resolve.
	for _, sg := range r.SubGraphs {
		for _, e := range sg.Edges {
			fmt.Fprintf(&b, "  %q -> %q;\n", qualify(sg.Name, e.From), qualify(sg.Name, e.To))
		}
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// qualify returns the graph-wide node id of an endpoint used in subGraph.
func qualify(subGraph, l string) string {
	addr, err := nodeid.Parse(l)
	if err != nil {
		return subGraph + "." + l
	}
	return addr.In(subGraph).String()
}
