package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/pipegraph/internal/label"
	"github.com/specialistvlad/pipegraph/internal/renderapp"
	"github.com/specialistvlad/pipegraph/internal/stage"
	"github.com/specialistvlad/pipegraph/internal/world"
)

// Node is a named, lazily constructible stage declaration. It is a small
// value type; copies share the same factory.
type Node struct {
	ident   string
	label   string
	factory stage.Factory
}

// Option customizes a Node at declaration time.
type Option func(*Node)

// WithLabel sets an explicit label instead of the derived one.
func WithLabel(l string) Option {
	return func(n *Node) {
		n.label = l
	}
}

// Declare binds an identifier and a factory into a Node. Unless WithLabel is
// given, the label is derived from ident (see label.Derive). Declare panics on
// an empty identifier, a nil factory or an invalid label: these are
// programming errors in the plugin.
func Declare(ident string, f stage.Factory, opts ...Option) Node {
	if ident == "" {
		panic("pipeline: Declare called with an empty identifier")
	}
	if f == nil {
		panic(fmt.Sprintf("pipeline: Declare(%q) called with a nil factory", ident))
	}

	n := Node{ident: ident, label: label.Derive(ident), factory: f}
	for _, opt := range opts {
		opt(&n)
	}
	if err := label.Validate(n.label); err != nil {
		panic(fmt.Sprintf("pipeline: Declare(%q): %v", ident, err))
	}
	return n
}

// DeclareOf declares a Node whose stage type S is built by ctor.
func DeclareOf[S stage.Stage](ident string, ctor stage.Constructor[S], opts ...Option) Node {
	return Declare(ident, stage.New(ctor), opts...)
}

// Label returns the node's identity in a sub-graph.
func (n Node) Label() string {
	return n.label
}

// Ident returns the identifier the node was declared with.
func (n Node) Ident() string {
	return n.ident
}

// Factory returns the factory that builds the node's stage.
func (n Node) Factory() stage.Factory {
	return n.factory
}

// String implements fmt.Stringer.
func (n Node) String() string {
	if n.factory == nil {
		return n.label
	}
	return fmt.Sprintf("%s<%s>", n.label, n.factory.StageType())
}

// Insert constructs the node's stage and adds it to subGraph under its label.
// A missing sub-graph is reported by the app as a warning and nothing is
// constructed.
func (n Node) Insert(ctx context.Context, app *renderapp.App, subGraph string) error {
	return app.AddNodeOf(ctx, subGraph, n.label, n.stageFactory())
}

// stageFactory never returns nil, so a zero Node fails construction with an
// error instead of panicking.
func (n Node) stageFactory() stage.Factory {
	if n.factory == nil {
		return missingFactory{}
	}
	return n.factory
}

type missingFactory struct{}

func (missingFactory) Construct(context.Context, *world.World) (stage.Stage, error) {
	return nil, &stage.ConstructionError{StageType: missingFactory{}.StageType(), Err: errors.New("node was declared without a factory")}
}

func (missingFactory) StageType() string {
	return "<none>"
}

// Labels returns the labels of nodes, in order.
func Labels(nodes []Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.label
	}
	return out
}
