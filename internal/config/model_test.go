package config

import (
	"testing"

	"github.com/specialistvlad/pipegraph/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_NeverNil(t *testing.T) {
	m := NewModel()

	p := m.Pipeline("core_2d")
	require.NotNil(t, p)
	assert.Equal(t, "core_2d", p.Name)
	assert.True(t, p.Stages.Get("bloom"))
	assert.Equal(t, "core_2d", p.SubGraphOr("core_2d"))

	var nilModel *Model
	assert.NotNil(t, nilModel.Pipeline("core_2d"))
}

func TestMerge(t *testing.T) {
	m := NewModel()
	m.Merge(&Model{Pipelines: map[string]*Pipeline{
		"core_2d": {Name: "core_2d", Stages: settings.New(map[string]bool{"bloom": false, "tonemapping": false})},
	}})
	m.Merge(&Model{Pipelines: map[string]*Pipeline{
		"core_2d": {Name: "core_2d", SubGraph: "sprites", Stages: settings.New(map[string]bool{"bloom": true})},
		"fxaa":    {Name: "fxaa", Stages: settings.New(map[string]bool{"core_3d": false})},
	}})

	core := m.Pipeline("core_2d")
	assert.True(t, core.Stages.Get("bloom"))
	assert.False(t, core.Stages.Get("tonemapping"))
	assert.Equal(t, "sprites", core.SubGraphOr("core_2d"))
	assert.Equal(t, []string{"core_2d", "fxaa"}, m.Names())

	m.Merge(nil)
	assert.Len(t, m.Pipelines, 2)
}

func TestMerge_DoesNotAliasSource(t *testing.T) {
	src := &Model{Pipelines: map[string]*Pipeline{
		"core_2d": {Name: "core_2d", Stages: settings.New(map[string]bool{"bloom": false})},
	}}
	m := NewModel()
	m.Merge(src)

	m.Pipeline("core_2d").Stages.Set("bloom", true)

	assert.False(t, src.Pipelines["core_2d"].Stages.Get("bloom"))
}

func TestApplyOverrides(t *testing.T) {
	m := NewModel()
	m.Merge(&Model{Pipelines: map[string]*Pipeline{
		"core_2d": {Name: "core_2d", Stages: settings.New(map[string]bool{"bloom": false}), Source: "core.hcl"},
	}})

	m.ApplyOverrides(map[string]settings.Inclusion{
		"core_2d": settings.New(map[string]bool{"bloom": true}),
		"core_3d": settings.New(map[string]bool{"prepass": true}),
	})

	assert.True(t, m.Pipeline("core_2d").Stages.Get("bloom"))
	assert.Equal(t, "command line", m.Pipeline("core_2d").Source)
	assert.Contains(t, m.Pipeline("core_3d").Stages.Labels(), "prepass")
}
