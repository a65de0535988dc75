package core2d

import (
	"testing"

	"github.com/specialistvlad/pipegraph/internal/config"
	"github.com/specialistvlad/pipegraph/internal/renderapp"
	"github.com/specialistvlad/pipegraph/internal/rendergraph"
	"github.com/specialistvlad/pipegraph/internal/settings"
	"github.com/specialistvlad/pipegraph/internal/stages"
	"github.com/specialistvlad/pipegraph/internal/testutil"
	"github.com/specialistvlad/pipegraph/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *renderapp.App {
	w := world.New()
	stages.InsertDefaults(w)
	return renderapp.New(w, nil)
}

func modelWith(p *config.Pipeline) *config.Model {
	m := config.NewModel()
	m.Pipelines[p.Name] = p
	return m
}

func TestCatalogue_Labels(t *testing.T) {
	assert.Equal(t,
		[]string{MainPass, Bloom, Tonemapping, EndMainPassPostProcessing, Upscaling},
		settingsLabels(DefaultSettings()),
	)
	assert.Equal(t, MsaaWriteback, MsaaWritebackNode().Label())
}

func settingsLabels(s Settings) []string {
	return s.NewSequence().Labels()
}

func TestPlugin_Build(t *testing.T) {
	testCases := []struct {
		name      string
		pipeline  *config.Pipeline
		subGraph  string
		wantNodes []string
		wantEdges []rendergraph.Edge
	}{
		{
			name:      "defaults",
			pipeline:  &config.Pipeline{Name: Name},
			subGraph:  Name,
			wantNodes: []string{MainPass, Bloom, Tonemapping, EndMainPassPostProcessing, Upscaling},
			wantEdges: []rendergraph.Edge{
				{From: MainPass, To: Bloom},
				{From: Bloom, To: Tonemapping},
				{From: Tonemapping, To: EndMainPassPostProcessing},
				{From: EndMainPassPostProcessing, To: Upscaling},
			},
		},
		{
			name: "bloom disabled",
			pipeline: &config.Pipeline{
				Name:   Name,
				Stages: settings.New(map[string]bool{Bloom: false}),
			},
			subGraph:  Name,
			wantNodes: []string{MainPass, Tonemapping, EndMainPassPostProcessing, Upscaling},
			wantEdges: []rendergraph.Edge{
				{From: MainPass, To: Tonemapping},
				{From: Tonemapping, To: EndMainPassPostProcessing},
				{From: EndMainPassPostProcessing, To: Upscaling},
			},
		},
		{
			name: "sub-graph override with msaa writeback",
			pipeline: &config.Pipeline{
				Name:     Name,
				SubGraph: "sprites",
				Stages:   settings.New(map[string]bool{MsaaWriteback: true, Tonemapping: false, Upscaling: false}),
			},
			subGraph:  "sprites",
			wantNodes: []string{MainPass, Bloom, EndMainPassPostProcessing, MsaaWriteback},
			wantEdges: []rendergraph.Edge{
				{From: MainPass, To: Bloom},
				{From: Bloom, To: EndMainPassPostProcessing},
				{From: MsaaWriteback, To: MainPass},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, _ := testutil.LogContext(t)
			app := newApp()

			err := NewPlugin().Build(ctx, app, modelWith(tc.pipeline))
			require.NoError(t, err)

			sg, ok := app.Graph().SubGraph(tc.subGraph)
			require.True(t, ok)
			assert.Equal(t, tc.wantNodes, sg.Labels())
			assert.Equal(t, tc.wantEdges, sg.Edges())
			assert.NoError(t, app.Graph().Validate())
		})
	}
}

func TestPlugin_BuildWarnsOnUnknownStage(t *testing.T) {
	ctx, logs := testutil.LogContext(t)
	app := newApp()

	err := NewPlugin().Build(ctx, app, modelWith(&config.Pipeline{
		Name:   Name,
		Stages: settings.New(map[string]bool{"blooom": false}),
	}))

	require.NoError(t, err)
	assert.Equal(t, 1, logs.Count("WARN"))
	assert.Contains(t, logs.String(), "blooom")
	sg, _ := app.Graph().SubGraph(Name)
	assert.True(t, sg.HasNode(Bloom))
}

func TestPlugin_BuildConstructionFailure(t *testing.T) {
	ctx, _ := testutil.LogContext(t)
	w := world.New()
	stages.InsertDefaults(w)
	world.Insert(w, stages.BloomSettings{Intensity: 3})
	app := renderapp.New(w, nil)

	err := NewPlugin().Build(ctx, app, config.NewModel())

	require.Error(t, err)
	assert.Contains(t, err.Error(), `node "bloom"`)
	sg, ok := app.Graph().SubGraph(Name)
	require.True(t, ok)
	assert.Zero(t, sg.Len())
	assert.Empty(t, sg.Edges())
}

func TestPlugin_BuildTwiceIsDuplicate(t *testing.T) {
	ctx, logs := testutil.LogContext(t)
	app := newApp()
	p := NewPlugin()

	require.NoError(t, p.Build(ctx, app, config.NewModel()))
	err := p.Build(ctx, app, config.NewModel())

	var dup *rendergraph.DuplicateLabelError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, MainPass, dup.Label)
	assert.Equal(t, 1, logs.Count("WARN"), "re-adding the sub-graph warns")
}
