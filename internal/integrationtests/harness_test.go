package integrationtests

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/specialistvlad/pipegraph/internal/app"
	"github.com/specialistvlad/pipegraph/internal/config"
	"github.com/specialistvlad/pipegraph/internal/registry"
	"github.com/specialistvlad/pipegraph/internal/renderapp"
	"github.com/specialistvlad/pipegraph/internal/testutil"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	Result    *app.Result
}

// RunBuild writes files into a temporary directory, points the app's config
// path at it and runs a build with the given plugins (core plugins when none
// are given).
func RunBuild(t *testing.T, files map[string]string, cfg app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()

	if len(files) > 0 {
		cfg.ConfigPaths = append(cfg.ConfigPaths, testutil.WriteFiles(t, files))
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	logs := &testutil.SafeBuffer{}
	a := app.NewApp(&out, logs, appConfig, nil, modules...)

	res, err := a.Build(context.Background())
	if err == nil {
		err = a.Report(res)
	}

	if os.Getenv("PIPEGRAPH_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}
	return &HarnessResult{Output: out.String(), LogOutput: logs.String(), Err: err, Result: res}
}

// SimplePlugin is a test helper for creating a plugin from a build function.
type SimplePlugin struct {
	PluginName string
	BuildFn    func(ctx context.Context, app *renderapp.App, cfg *config.Model) error
}

// Register implements the registry.Module interface.
func (p *SimplePlugin) Register(r *registry.Registry) { r.Register(p) }

// Name implements registry.Plugin.
func (p *SimplePlugin) Name() string { return p.PluginName }

// Build implements registry.Plugin.
func (p *SimplePlugin) Build(ctx context.Context, app *renderapp.App, cfg *config.Model) error {
	if p.BuildFn == nil {
		return nil
	}
	return p.BuildFn(ctx, app, cfg)
}

// labelsOf returns the node labels of a sub-graph, failing the test if it
// does not exist.
func labelsOf(t *testing.T, res *app.Result, subGraph string) []string {
	t.Helper()
	require.NotNil(t, res)
	sg, ok := res.App.Graph().SubGraph(subGraph)
	require.True(t, ok, fmt.Sprintf("sub-graph %q not found", subGraph))
	return sg.Labels()
}
