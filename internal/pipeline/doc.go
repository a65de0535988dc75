// Package pipeline assembles ordered, configurable sequences of stages into
// render sub-graphs.
//
// # Overview
//
// A plugin declares a catalogue of Nodes (a label bound to a stage factory),
// filters it through inclusion settings into a Sequence, and instantiates the
// Sequence into a sub-graph:
//
//	catalogue := []pipeline.Node{
//	    pipeline.Declare("MainPass", stages.MainPass2dFactory()),
//	    pipeline.Declare("Bloom", stages.BloomFactory()),
//	    pipeline.Declare("Tonemapping", stages.TonemappingFactory()),
//	}
//	seq := pipeline.Build("core_2d", catalogue, inclusion)
//	err := seq.Create(ctx, app)
//
// Instantiation constructs every stage in order, inserts it under its label,
// and chains consecutive labels with edges. Optional source and target
// anchors splice the chain into a sub-graph that already has nodes.
//
// # Ordering
//
// Build is a stable filter: the result is a subsequence of the catalogue in
// catalogue order. Removing a stage reconnects its neighbours directly.
package pipeline
