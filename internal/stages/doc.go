// Package stages provides the concrete render stages used by the core
// pipelines, and the world resources they are constructed from.
//
// The stages are deliberately opaque: construction validates the resources a
// real implementation would need, and Run only records that it was invoked.
package stages
