package stages

import (
	"context"
	"fmt"

	"github.com/specialistvlad/pipegraph/internal/ctxlog"
	"github.com/specialistvlad/pipegraph/internal/stage"
	"github.com/specialistvlad/pipegraph/internal/world"
)

// gpuStage is the shared part of every stage that records GPU commands.
type gpuStage struct {
	name   string
	device *RenderDevice
}

func (g *gpuStage) init(w *world.World, name string) error {
	device, err := world.Resource[*RenderDevice](w)
	if err != nil {
		return err
	}
	g.name = name
	g.device = device
	return nil
}

// Run implements stage.Stage.
func (g *gpuStage) Run(ctx context.Context, fc *stage.FrameContext) error {
	ctxlog.FromContext(ctx).Debug("Running stage.", "stage", g.name, "device", g.device.Name, "frame", fc.Frame, "view", fc.ViewEntity)
	return nil
}

// MainPass2d draws the sorted 2D phase items.
type MainPass2d struct{ gpuStage }

func (s *MainPass2d) Init(w *world.World) error { return s.init(w, "main_pass_2d") }

// Prepass3d writes depth and normals ahead of the opaque pass.
type Prepass3d struct{ gpuStage }

func (s *Prepass3d) Init(w *world.World) error { return s.init(w, "prepass_3d") }

// MainOpaquePass3d draws opaque 3D geometry.
type MainOpaquePass3d struct{ gpuStage }

func (s *MainOpaquePass3d) Init(w *world.World) error { return s.init(w, "main_opaque_pass_3d") }

// MainTransparentPass3d draws transparent 3D geometry.
type MainTransparentPass3d struct{ gpuStage }

func (s *MainTransparentPass3d) Init(w *world.World) error {
	return s.init(w, "main_transparent_pass_3d")
}

// Bloom adds the bloom post-process.
type Bloom struct {
	gpuStage
	Intensity float64
}

func (s *Bloom) Init(w *world.World) error {
	cfg, err := world.Resource[BloomSettings](w)
	if err != nil {
		return err
	}
	if cfg.Intensity < 0 || cfg.Intensity > 1 {
		return fmt.Errorf("bloom intensity %v out of range [0, 1]", cfg.Intensity)
	}
	s.Intensity = cfg.Intensity
	return s.init(w, "bloom")
}

// Tonemapping maps HDR color to the display range.
type Tonemapping struct {
	gpuStage
	Method string
}

func (s *Tonemapping) Init(w *world.World) error {
	cfg, err := world.Resource[TonemappingSettings](w)
	if err != nil {
		return err
	}
	if err := oneOf("tonemapping method", cfg.Method, tonemappingMethods); err != nil {
		return err
	}
	s.Method = cfg.Method
	return s.init(w, "tonemapping")
}

// Fxaa applies fast approximate anti-aliasing.
type Fxaa struct {
	gpuStage
	EdgeThreshold string
}

func (s *Fxaa) Init(w *world.World) error {
	cfg, err := world.Resource[FxaaSettings](w)
	if err != nil {
		return err
	}
	if err := oneOf("fxaa edge threshold", cfg.EdgeThreshold, fxaaThresholds); err != nil {
		return err
	}
	s.EdgeThreshold = cfg.EdgeThreshold
	return s.init(w, "fxaa")
}

// Upscaling blits the view target to the output texture.
type Upscaling struct{ gpuStage }

func (s *Upscaling) Init(w *world.World) error { return s.init(w, "upscaling") }

// MsaaWriteback copies the main texture into the multisampled one.
type MsaaWriteback struct {
	gpuStage
	Samples int
}

func (s *MsaaWriteback) Init(w *world.World) error {
	cfg, err := world.Resource[MsaaSettings](w)
	if err != nil {
		return err
	}
	switch cfg.Samples {
	case 1, 2, 4, 8:
	default:
		return fmt.Errorf("unsupported msaa sample count %d", cfg.Samples)
	}
	s.Samples = cfg.Samples
	return s.init(w, "msaa_writeback")
}
