// Package fxaa provides the plugin that splices the FXAA stage into the core
// pipelines, between tonemapping and the end of post-processing.
//
// The "fxaa" configuration section toggles the splice per target pipeline:
//
//	pipeline "fxaa" {
//	  stages = { core_3d = false }
//	}
//
// The plugin must be registered after the pipelines it targets.
package fxaa
