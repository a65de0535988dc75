package stages

import "github.com/specialistvlad/pipegraph/internal/stage"

func MainPass2dFactory() stage.Factory { return stage.FromWorld[MainPass2d]() }

func Prepass3dFactory() stage.Factory { return stage.FromWorld[Prepass3d]() }

func MainOpaquePass3dFactory() stage.Factory { return stage.FromWorld[MainOpaquePass3d]() }

func MainTransparentPass3dFactory() stage.Factory {
	return stage.FromWorld[MainTransparentPass3d]()
}

func BloomFactory() stage.Factory { return stage.FromWorld[Bloom]() }

func TonemappingFactory() stage.Factory { return stage.FromWorld[Tonemapping]() }

func FxaaFactory() stage.Factory { return stage.FromWorld[Fxaa]() }

func UpscalingFactory() stage.Factory { return stage.FromWorld[Upscaling]() }

func MsaaWritebackFactory() stage.Factory { return stage.FromWorld[MsaaWriteback]() }

// EmptyFactory builds ordering markers that do no work.
func EmptyFactory() stage.Factory { return stage.Zero[stage.Empty]() }
