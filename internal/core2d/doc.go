// Package core2d declares the core 2D pipeline: its stage catalogue, its
// inclusion settings and the plugin that creates the "core_2d" sub-graph.
//
// The catalogue order is the execution order:
//
//	main_pass -> bloom -> tonemapping -> end_main_pass_post_processing -> upscaling
//
// end_main_pass_post_processing is an empty anchor other plugins splice
// post-processing stages in front of. msaa_writeback is declared outside the
// catalogue and, when enabled, is prefixed to the first stage.
package core2d
