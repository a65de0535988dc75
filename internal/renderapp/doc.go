// Package renderapp exposes the narrow graph-mutation API that plugins and
// pipeline sequences use during the build phase.
//
// An App pairs the shared world with the render graph. It replaces ambient
// global graph state: the App is created by the bootstrap code, passed by
// pointer into every construction and mutation call, and dropped when the
// build phase ends.
//
// # Missing sub-graphs
//
// Plugin initialization order is not enforced, so a node or edge request
// against a sub-graph that does not exist yet is not fatal: it is logged as a
// warning (exactly one per call) and ignored.
package renderapp
