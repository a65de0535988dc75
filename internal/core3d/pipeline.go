package core3d

import (
	"github.com/specialistvlad/pipegraph/internal/pipeline"
	"github.com/specialistvlad/pipegraph/internal/settings"
	"github.com/specialistvlad/pipegraph/internal/stages"
)

// Name is the plugin name, the configuration key and the default sub-graph
// name.
const Name = "core_3d"

// Stage labels.
const (
	Prepass                   = "prepass"
	MainOpaquePass            = "main_opaque_pass"
	MainTransparentPass       = "main_transparent_pass"
	EndMainPass               = "end_main_pass"
	Bloom                     = "bloom"
	Tonemapping               = "tonemapping"
	EndMainPassPostProcessing = "end_main_pass_post_processing"
	Upscaling                 = "upscaling"
)

// Catalogue returns the ordered stage declarations of the 3D pipeline.
func Catalogue() []pipeline.Node {
	return []pipeline.Node{
		pipeline.Declare("Prepass", stages.Prepass3dFactory()),
		pipeline.Declare("MainOpaquePass", stages.MainOpaquePass3dFactory()),
		pipeline.Declare("MainTransparentPass", stages.MainTransparentPass3dFactory()),
		pipeline.Declare("EndMainPass", stages.EmptyFactory()),
		pipeline.Declare("Bloom", stages.BloomFactory()),
		pipeline.Declare("Tonemapping", stages.TonemappingFactory()),
		pipeline.Declare("EndMainPassPostProcessing", stages.EmptyFactory()),
		pipeline.Declare("Upscaling", stages.UpscalingFactory()),
	}
}

// Settings configures the 3D pipeline.
type Settings struct {
	SubGraph string
	Stages   settings.Inclusion
}

// DefaultSettings leaves the prepass off; it only runs when something asks
// for depth or normals.
func DefaultSettings() Settings {
	return Settings{
		SubGraph: Name,
		Stages:   settings.New(map[string]bool{Prepass: false}),
	}
}

// NewSequence filters the catalogue with s.
func (s Settings) NewSequence() pipeline.Sequence {
	sub := s.SubGraph
	if sub == "" {
		sub = Name
	}
	return pipeline.Build(sub, Catalogue(), s.Stages)
}
