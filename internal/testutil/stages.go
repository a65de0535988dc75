package testutil

import (
	"context"

	"github.com/specialistvlad/pipegraph/internal/stage"
	"github.com/specialistvlad/pipegraph/internal/world"
)

// Marker is a stage that only carries a name, so tests can tell which
// declaration produced a node.
type Marker struct {
	Name string
}

// Run implements stage.Stage.
func (m *Marker) Run(context.Context, *stage.FrameContext) error { return nil }

// MarkerFactory returns a factory producing a *Marker with the given name.
func MarkerFactory(name string) stage.Factory {
	return stage.New(func(*world.World) (*Marker, error) {
		return &Marker{Name: name}, nil
	})
}

// FailingFactory returns a factory whose construction always fails with err.
func FailingFactory(err error) stage.Factory {
	return stage.New(func(*world.World) (*Marker, error) {
		return nil, err
	})
}

// CountingFactory wraps a factory and counts Construct calls.
type CountingFactory struct {
	stage.Factory
	Calls int
}

// Construct implements stage.Factory.
func (c *CountingFactory) Construct(ctx context.Context, w *world.World) (stage.Stage, error) {
	c.Calls++
	return c.Factory.Construct(ctx, w)
}
