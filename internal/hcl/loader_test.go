package hcl

import (
	"path/filepath"
	"testing"

	"github.com/specialistvlad/pipegraph/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	ctx, _ := testutil.LogContext(t)
	dir := testutil.WriteFiles(t, map[string]string{
		"a_core.hcl": `
pipeline "core_2d" {
  sub_graph = "sprites"
  stages    = { bloom = false, upscaling = true }

  stage "tonemapping" {
    enabled = false
  }
}

pipeline "fxaa" {
  stages = { core_3d = false }
}
`,
		"b_override.hcl": `
pipeline "core_2d" {
  stages = { bloom = true }
}
`,
		"ignored.yaml": "pipelines: {}\n",
	})

	model, err := NewLoader().Load(ctx, dir, filepath.Join(dir, "missing"))
	require.NoError(t, err)

	assert.Equal(t, []string{"core_2d", "fxaa"}, model.Names())

	core := model.Pipeline("core_2d")
	assert.Equal(t, "sprites", core.SubGraph)
	assert.True(t, core.Stages.Get("bloom"), "later file overrides")
	assert.False(t, core.Stages.Get("tonemapping"))
	assert.True(t, core.Stages.Get("upscaling"))
	assert.Equal(t, []string{"tonemapping"}, core.Stages.Disabled())

	assert.False(t, model.Pipeline("fxaa").Stages.Get("core_3d"))
}

func TestLoader_LoadErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "syntax error",
			content: `pipeline "core_2d" {`,
			wantErr: "failed to parse HCL file",
		},
		{
			name:    "unknown block",
			content: `plugin "core_2d" {}`,
			wantErr: "failed to decode HCL file",
		},
		{
			name:    "stages not bool",
			content: `pipeline "core_2d" { stages = { bloom = "maybe" } }`,
			wantErr: "stages must be a map of stage label to bool",
		},
		{
			name:    "stages not a map",
			content: `pipeline "core_2d" { stages = ["bloom"] }`,
			wantErr: "stages must be a map of stage label to bool",
		},
		{
			name: "conflicting stage block",
			content: `
pipeline "core_2d" {
  stages = { bloom = false }
  stage "bloom" { enabled = true }
}`,
			wantErr: "stage 'bloom' is set to false in stages but true in its stage block",
		},
		{
			name:    "stage block without enabled",
			content: `pipeline "core_2d" { stage "bloom" {} }`,
			wantErr: "failed to decode HCL file",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, _ := testutil.LogContext(t)
			dir := testutil.WriteFiles(t, map[string]string{"conf.hcl": tc.content})

			_, err := NewLoader().Load(ctx, dir)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoader_EmptyPipelineBlock(t *testing.T) {
	ctx, _ := testutil.LogContext(t)
	dir := testutil.WriteFiles(t, map[string]string{"conf.hcl": `pipeline "core_3d" {}`})

	model, err := NewLoader().Load(ctx, filepath.Join(dir, "conf.hcl"))

	require.NoError(t, err)
	p := model.Pipeline("core_3d")
	assert.Equal(t, "core_3d", p.SubGraphOr("core_3d"))
	assert.Zero(t, p.Stages.Len())
	assert.Equal(t, filepath.Join(dir, "conf.hcl"), p.Source)
}
