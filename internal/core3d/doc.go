// Package core3d declares the core 3D pipeline and the plugin that creates
// the "core_3d" sub-graph.
package core3d
