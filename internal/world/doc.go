// Package world holds the shared execution context that pipeline stages are
// constructed from.
//
// A World is a typed resource container: at most one value per Go type. Stage
// constructors read the resources they need (devices, pipeline caches,
// per-effect settings) and must not retain the World after they return.
//
// # Thread-Safety
//
// A World is NOT safe for concurrent use. It is exclusively borrowed by the
// build phase, which runs on a single goroutine, and is discarded afterward.
package world
