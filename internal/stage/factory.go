package stage

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/pipegraph/internal/ctxlog"
	"github.com/specialistvlad/pipegraph/internal/world"
)

// Factory constructs a stage from the shared world.
//
// Construct must be deterministic for the same world state and must not keep
// a reference to the world after it returns. An error means the stage's own
// initialization failed; callers treat it as fatal to the build.
type Factory interface {
	Construct(ctx context.Context, w *world.World) (Stage, error)
	// StageType names the concrete stage type the factory produces.
	StageType() string
}

// Constructor builds a stage of type S from the world.
type Constructor[S Stage] func(w *world.World) (S, error)

// FactoryOf is a Factory bound at compile time to the stage type S. It holds
// no state besides the constructor and is cheap to copy.
type FactoryOf[S Stage] struct {
	ctor Constructor[S]
}

// New binds a constructor to its stage type.
func New[S Stage](ctor Constructor[S]) FactoryOf[S] {
	if ctor == nil {
		panic(fmt.Sprintf("stage: nil constructor for %s", TypeName[S]()))
	}
	return FactoryOf[S]{ctor: ctor}
}

// Initializer is implemented by stages that know how to set themselves up
// from the world, starting from their zero value.
type Initializer interface {
	Stage
	Init(w *world.World) error
}

// FromWorld returns a factory that allocates a zero T and calls its Init method.
func FromWorld[T any, PT interface {
	*T
	Initializer
}]() FactoryOf[PT] {
	return New(func(w *world.World) (PT, error) {
		s := PT(new(T))
		if err := s.Init(w); err != nil {
			return nil, err
		}
		return s, nil
	})
}

// Zero returns a factory for stages whose zero value is ready to use.
func Zero[S Stage]() FactoryOf[S] {
	return New(func(*world.World) (S, error) {
		var s S
		return s, nil
	})
}

// Construct implements Factory.
func (f FactoryOf[S]) Construct(ctx context.Context, w *world.World) (Stage, error) {
	if f.ctor == nil {
		return nil, &ConstructionError{StageType: f.StageType(), Err: errors.New("factory has no constructor")}
	}
	ctxlog.FromContext(ctx).Debug("Constructing stage.", "stage_type", f.StageType())

	s, err := f.ctor(w)
	if err != nil {
		return nil, &ConstructionError{StageType: f.StageType(), Err: err}
	}
	return s, nil
}

// StageType implements Factory.
func (f FactoryOf[S]) StageType() string {
	return TypeName[S]()
}

// ConstructionError reports that a stage could not be built.
type ConstructionError struct {
	StageType string
	Err       error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("failed to construct stage %s: %v", e.StageType, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}
