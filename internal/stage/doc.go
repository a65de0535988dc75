// Package stage defines the opaque unit of render work placed into a render
// graph, and the deferred-construction contract used to build one from the
// shared world.
//
// Stages of different concrete types are stored and invoked uniformly through
// the Stage interface. A Factory binds a concrete stage type to a constructor
// so the type can be chosen at declaration time while the instance is built
// later, once the world exists.
package stage
