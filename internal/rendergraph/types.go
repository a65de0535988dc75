package rendergraph

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/pipegraph/internal/label"
	"github.com/specialistvlad/pipegraph/internal/stage"
)

// Node is a single stage stored in a sub-graph.
type Node struct {
	// ID is the node's stable identifier inside its sub-graph.
	ID label.ID
	// Label is the human-readable identity used by edges and settings.
	Label string
	// Stage is the constructed unit of work. The sub-graph owns it.
	Stage stage.Stage
}

// Edge is a directed ordering constraint: From runs before To.
type Edge struct {
	From string
	To   string
}

func (e Edge) String() string {
	return e.From + " -> " + e.To
}

// DuplicateLabelError is returned when a label is inserted twice into the
// same sub-graph.
type DuplicateLabelError struct {
	SubGraph string
	Label    string
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("sub-graph %q already has a node labelled %q", e.SubGraph, e.Label)
}

// ValidationError aggregates every structural problem found in a graph.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("render graph validation failed:\n- %s", strings.Join(e.Problems, "\n- "))
}
