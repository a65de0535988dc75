package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/pipegraph/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, cfg Config) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	c, err := NewConfig(cfg)
	require.NoError(t, err)
	var out, logs bytes.Buffer
	return NewApp(&out, &logs, c, nil), &out, &logs
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewApp_RegistersCorePlugins(t *testing.T) {
	a, _, _ := newTestApp(t, Config{})
	assert.Equal(t, []string{"core_2d", "core_3d", "fxaa"}, a.Registry().Names())
}

func TestBuild_Defaults(t *testing.T) {
	a, _, logs := newTestApp(t, Config{LogLevel: "debug"})

	res, err := a.Build(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, res.BuildID)
	assert.Contains(t, logs.String(), "build_id="+res.BuildID)

	sg, ok := res.App.Graph().SubGraph("core_2d")
	require.True(t, ok)
	assert.Equal(t, []string{"main_pass", "bloom", "tonemapping", "end_main_pass_post_processing", "upscaling", "fxaa"}, sg.Labels())
	_, ok = res.App.Graph().SubGraph("core_3d")
	assert.True(t, ok)
}

func TestBuild_ConfigAndOverrides(t *testing.T) {
	hclPath := writeFile(t, "core.hcl", `
pipeline "core_2d" {
  stages = { bloom = false, tonemapping = false }
}
pipeline "core_4d" {}
`)
	a, _, logs := newTestApp(t, Config{
		ConfigPaths: []string{hclPath},
		Set:         []string{"core_2d.tonemapping=true", "fxaa.core_2d=false"},
		Plugins:     []string{"core_2d", "fxaa"},
	})

	res, err := a.Build(context.Background())
	require.NoError(t, err)

	sg, _ := res.App.Graph().SubGraph("core_2d")
	assert.Equal(t, []string{"main_pass", "tonemapping", "end_main_pass_post_processing", "upscaling"}, sg.Labels())
	_, ok := res.App.Graph().SubGraph("core_3d")
	assert.False(t, ok)
	assert.Contains(t, logs.String(), "Configuration for unknown pipeline ignored.")
	assert.Contains(t, logs.String(), "pipeline=core_4d")
	// fxaa is disabled for core_2d and core_3d was never built.
	assert.Contains(t, logs.String(), "sub-graph doesn't exist")
}

func TestBuild_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     func(t *testing.T) Config
		wantErr string
	}{
		{
			name: "missing config path",
			cfg: func(t *testing.T) Config {
				return Config{ConfigPaths: []string{filepath.Join(t.TempDir(), "missing.hcl")}}
			},
			wantErr: "failed to load configuration",
		},
		{
			name: "broken config",
			cfg: func(t *testing.T) Config {
				return Config{ConfigPaths: []string{writeFile(t, "core.yaml", "pipelines: [")}}
			},
			wantErr: "failed to decode YAML file",
		},
		{
			name:    "unknown plugin",
			cfg:     func(*testing.T) Config { return Config{Plugins: []string{"core_4d"}} },
			wantErr: "unknown plugins: core_4d",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, out, _ := newTestApp(t, tc.cfg(t))

			err := a.Run(context.Background())

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
			assert.Zero(t, out.Len())
		})
	}
}

func TestRun_WritesReport(t *testing.T) {
	a, out, _ := newTestApp(t, Config{Output: string(report.FormatJSON), Plugins: []string{"core_3d"}})

	require.NoError(t, a.Run(context.Background()))

	var got report.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got.SubGraphs, 1)
	assert.Equal(t, "core_3d", got.SubGraphs[0].Name)
	assert.Equal(t, "main_opaque_pass", got.SubGraphs[0].Order[0])
	assert.False(t, strings.Contains(out.String(), "level="), "logs must not leak into the report")
}
