package stages

import (
	"fmt"

	"github.com/specialistvlad/pipegraph/internal/world"
)

// RenderDevice is the GPU device every drawing stage needs.
type RenderDevice struct {
	Name string
}

// BloomSettings configures the bloom stage.
type BloomSettings struct {
	Intensity float64
}

// TonemappingSettings configures the tonemapping stage.
type TonemappingSettings struct {
	Method string
}

// FxaaSettings configures the FXAA stage.
type FxaaSettings struct {
	EdgeThreshold string
}

// MsaaSettings holds the multisample count of the main view target.
type MsaaSettings struct {
	Samples int
}

var (
	tonemappingMethods = []string{"none", "reinhard", "reinhard_luminance", "aces_fitted", "agx", "tony_mc_mapface", "blender_filmic"}
	fxaaThresholds     = []string{"low", "medium", "high", "ultra", "extreme"}
)

// InsertDefaults adds every resource the stages in this package read, with
// default values, unless the world already holds one.
func InsertDefaults(w *world.World) {
	world.Init(w, func() *RenderDevice { return &RenderDevice{Name: "default"} })
	world.Init(w, func() BloomSettings { return BloomSettings{Intensity: 0.15} })
	world.Init(w, func() TonemappingSettings { return TonemappingSettings{Method: "tony_mc_mapface"} })
	world.Init(w, func() FxaaSettings { return FxaaSettings{EdgeThreshold: "high"} })
	world.Init(w, func() MsaaSettings { return MsaaSettings{Samples: 4} })
}

func oneOf(kind, value string, allowed []string) error {
	for _, a := range allowed {
		if a == value {
			return nil
		}
	}
	return fmt.Errorf("unsupported %s %q", kind, value)
}
