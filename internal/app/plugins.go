package app

import (
	"github.com/specialistvlad/pipegraph/internal/core2d"
	"github.com/specialistvlad/pipegraph/internal/core3d"
	"github.com/specialistvlad/pipegraph/internal/fxaa"
	"github.com/specialistvlad/pipegraph/internal/registry"
)

// corePlugins returns the plugins compiled into the pipegraph binary, in build
// order. Splice plugins come after the pipelines they target.
func corePlugins() []registry.Module {
	return []registry.Module{
		core2d.NewPlugin(),
		core3d.NewPlugin(),
		fxaa.NewPlugin(),
	}
}
