package world

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// World is a container of resources keyed by their Go type.
type World struct {
	resources map[reflect.Type]any
}

// New creates an empty World.
func New() *World {
	return &World{resources: make(map[reflect.Type]any)}
}

// MissingResourceError is returned when a constructor asks for a resource the
// World does not hold. Available lists what the World held at the time.
type MissingResourceError struct {
	Type      reflect.Type
	Available []string
}

func (e *MissingResourceError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("resource %s not found in world (world is empty)", e.Type)
	}
	return fmt.Sprintf("resource %s not found in world (available: %s)", e.Type, strings.Join(e.Available, ", "))
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Insert stores v as the resource of type T, replacing any previous value.
func Insert[T any](w *World, v T) {
	w.resources[typeOf[T]()] = v
}

// Get returns the resource of type T and whether it was present.
func Get[T any](w *World) (T, bool) {
	v, ok := w.resources[typeOf[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Resource returns the resource of type T or a *MissingResourceError.
func Resource[T any](w *World) (T, error) {
	v, ok := Get[T](w)
	if !ok {
		return v, &MissingResourceError{Type: typeOf[T](), Available: w.Types()}
	}
	return v, nil
}

// Init returns the resource of type T, inserting the value produced by
// create first if none is present.
func Init[T any](w *World, create func() T) T {
	if v, ok := Get[T](w); ok {
		return v
	}
	v := create()
	Insert(w, v)
	return v
}

// Len returns the number of resources held.
func (w *World) Len() int {
	return len(w.resources)
}

// Types lists the held resource types, sorted by name, for diagnostics.
func (w *World) Types() []string {
	names := make([]string, 0, len(w.resources))
	for t := range w.resources {
		names = append(names, t.String())
	}
	sort.Strings(names)
	return names
}
