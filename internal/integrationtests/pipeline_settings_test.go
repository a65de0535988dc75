package integrationtests

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/pipegraph/internal/app"
	"github.com/specialistvlad/pipegraph/internal/rendergraph"
	"github.com/stretchr/testify/require"
)

// Test for: every core pipeline builds with default settings and FXAA sits
// between tonemapping and the end of post-processing.
func TestPipelineSettings_Defaults(t *testing.T) {
	// --- Act ---
	h := RunBuild(t, nil, app.Config{})

	// --- Assert ---
	require.NoError(t, h.Err)

	want2d := []string{"main_pass", "bloom", "tonemapping", "end_main_pass_post_processing", "upscaling", "fxaa"}
	if diff := cmp.Diff(want2d, labelsOf(t, h.Result, "core_2d")); diff != "" {
		t.Errorf("core_2d labels mismatch (-want +got):\n%s", diff)
	}

	sg, _ := h.Result.App.Graph().SubGraph("core_2d")
	order, err := sg.TopologicalOrder()
	require.NoError(t, err)
	wantOrder := []string{"main_pass", "bloom", "tonemapping", "fxaa", "end_main_pass_post_processing", "upscaling"}
	if diff := cmp.Diff(wantOrder, order); diff != "" {
		t.Errorf("core_2d order mismatch (-want +got):\n%s", diff)
	}
	require.Contains(t, h.Output, "sub-graph core_3d")
}

// Test for: HCL and YAML files are merged, and --set overrides both.
func TestPipelineSettings_FilesAndOverridesMerge(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"a/core.hcl": `
pipeline "core_2d" {
  sub_graph = "sprites"
  stages    = { bloom = false, upscaling = false }
}
`,
		"b/core.yaml": `
pipelines:
  core_2d:
    stages: { upscaling: true }
  core_3d:
    stages: { prepass: true, bloom: false }
  fxaa:
    stages: { core_3d: false }
`,
	}

	// --- Act ---
	h := RunBuild(t, files, app.Config{Set: []string{"core_2d.msaa_writeback=true"}})

	// --- Assert ---
	require.NoError(t, h.Err)

	want2d := []string{"main_pass", "tonemapping", "end_main_pass_post_processing", "upscaling", "msaa_writeback", "fxaa"}
	if diff := cmp.Diff(want2d, labelsOf(t, h.Result, "sprites")); diff != "" {
		t.Errorf("sprites labels mismatch (-want +got):\n%s", diff)
	}
	want3d := []string{"prepass", "main_opaque_pass", "main_transparent_pass", "end_main_pass", "tonemapping", "end_main_pass_post_processing", "upscaling"}
	if diff := cmp.Diff(want3d, labelsOf(t, h.Result, "core_3d")); diff != "" {
		t.Errorf("core_3d labels mismatch (-want +got):\n%s", diff)
	}

	sg, _ := h.Result.App.Graph().SubGraph("sprites")
	wantEdges := []rendergraph.Edge{
		{From: "main_pass", To: "tonemapping"},
		{From: "tonemapping", To: "end_main_pass_post_processing"},
		{From: "end_main_pass_post_processing", To: "upscaling"},
		{From: "msaa_writeback", To: "main_pass"},
		{From: "tonemapping", To: "fxaa"},
		{From: "fxaa", To: "end_main_pass_post_processing"},
	}
	if diff := cmp.Diff(wantEdges, sg.Edges()); diff != "" {
		t.Errorf("sprites edges mismatch (-want +got):\n%s", diff)
	}
}

// Test for: a setting that disables every stage yields an empty sub-graph.
func TestPipelineSettings_EverythingDisabled(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"core.hcl": `
pipeline "core_2d" {
  stages = {
    main_pass                     = false
    bloom                         = false
    tonemapping                   = false
    end_main_pass_post_processing = false
    upscaling                     = false
  }
}
pipeline "fxaa" {
  stages = { core_2d = false }
}
`,
	}

	// --- Act ---
	h := RunBuild(t, files, app.Config{Plugins: []string{"core_2d", "fxaa"}, Set: []string{"fxaa.core_3d=false"}})

	// --- Assert ---
	require.NoError(t, h.Err)
	require.Empty(t, labelsOf(t, h.Result, "core_2d"))
	sg, _ := h.Result.App.Graph().SubGraph("core_2d")
	require.Empty(t, sg.Edges())
}
