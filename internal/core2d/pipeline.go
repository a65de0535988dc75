package core2d

import (
	"github.com/specialistvlad/pipegraph/internal/pipeline"
	"github.com/specialistvlad/pipegraph/internal/settings"
	"github.com/specialistvlad/pipegraph/internal/stages"
)

// Name is the plugin name, the configuration key and the default sub-graph
// name.
const Name = "core_2d"

// Stage labels.
const (
	MainPass                  = "main_pass"
	Bloom                     = "bloom"
	Tonemapping               = "tonemapping"
	EndMainPassPostProcessing = "end_main_pass_post_processing"
	Upscaling                 = "upscaling"
	MsaaWriteback             = "msaa_writeback"
)

// Catalogue returns the ordered stage declarations of the 2D pipeline.
func Catalogue() []pipeline.Node {
	return []pipeline.Node{
		pipeline.Declare("MainPass", stages.MainPass2dFactory()),
		pipeline.Declare("Bloom", stages.BloomFactory()),
		pipeline.Declare("Tonemapping", stages.TonemappingFactory()),
		pipeline.Declare("EndMainPassPostProcessing", stages.EmptyFactory()),
		pipeline.Declare("Upscaling", stages.UpscalingFactory()),
	}
}

// MsaaWritebackNode is the declaration of the optional MSAA writeback stage.
func MsaaWritebackNode() pipeline.Node {
	return pipeline.Declare("MsaaWriteback", stages.MsaaWritebackFactory())
}

// KnownLabels lists every label the 2D settings may mention.
func KnownLabels() []string {
	return append(pipeline.Labels(Catalogue()), MsaaWriteback)
}

// Settings configures the 2D pipeline.
type Settings struct {
	// SubGraph is the name of the sub-graph the pipeline is built into.
	SubGraph string
	// Stages opts stages out of the catalogue.
	Stages settings.Inclusion
}

// DefaultSettings keeps every catalogue stage and leaves MSAA writeback off.
func DefaultSettings() Settings {
	return Settings{
		SubGraph: Name,
		Stages:   settings.New(map[string]bool{MsaaWriteback: false}),
	}
}

// NewSequence filters the catalogue with s.
func (s Settings) NewSequence() pipeline.Sequence {
	return pipeline.Build(s.subGraph(), Catalogue(), s.Stages)
}

func (s Settings) subGraph() string {
	if s.SubGraph == "" {
		return Name
	}
	return s.SubGraph
}
