package stage

import (
	"context"
	"fmt"
	"reflect"
)

// FrameContext is what a stage receives when the (external) scheduler runs it.
type FrameContext struct {
	// Frame is the monotonically increasing frame counter.
	Frame uint64
	// ViewEntity identifies the view being rendered.
	ViewEntity uint64
}

// Stage is an opaque, executable unit of rendering work.
type Stage interface {
	Run(ctx context.Context, fc *FrameContext) error
}

// Empty is a stage that does nothing. It is used as an ordering marker, e.g.
// "end of main pass post processing".
type Empty struct{}

// Run implements Stage.
func (Empty) Run(context.Context, *FrameContext) error { return nil }

// TypeName returns a readable name for the stage type S, used in logs and errors.
func TypeName[S any]() string {
	return reflect.TypeOf((*S)(nil)).Elem().String()
}

// Name returns a readable type name for a constructed stage.
func Name(s Stage) string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", s)
}
