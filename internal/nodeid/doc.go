/*
Package nodeid provides a structured representation for node identifiers
used as edge endpoints in the render graph.

An identifier is either a bare label, resolved in the sub-graph that owns the
edge, or a label qualified with the name of another sub-graph:

	tonemapping
	core_2d.upscaling

Sub-graph names and labels may not themselves contain dots.
*/
package nodeid
