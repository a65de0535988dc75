package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/pipegraph/internal/app"
	"github.com/specialistvlad/pipegraph/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name       string
		args       []string
		wantExit   bool
		wantCode   int
		wantErr    string
		wantOutput string
		check      func(t *testing.T, cfg *app.Config)
	}{
		{
			name:       "no command prints help",
			args:       nil,
			wantExit:   true,
			wantOutput: "Usage:",
		},
		{
			name:       "build help",
			args:       []string{"build", "--help"},
			wantExit:   true,
			wantOutput: "--set stringArray",
		},
		{
			name: "defaults",
			args: []string{"build"},
			check: func(t *testing.T, cfg *app.Config) {
				assert.Empty(t, cfg.ConfigPaths)
				assert.Equal(t, report.FormatText, cfg.Format)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "text", cfg.LogFormat)
			},
		},
		{
			name: "all flags",
			args: []string{
				"build", "-c", "a.hcl", "--config", "b.yaml", "conf.d",
				"--set", "core_2d.bloom=false", "--set", "core_3d.prepass=true",
				"--plugins", "core_2d,fxaa", "-o", "json", "--log-level", "debug", "--log-format", "json",
			},
			check: func(t *testing.T, cfg *app.Config) {
				assert.Equal(t, []string{"a.hcl", "b.yaml", "conf.d"}, cfg.ConfigPaths)
				assert.Equal(t, []string{"core_2d", "fxaa"}, cfg.Plugins)
				assert.Equal(t, report.FormatJSON, cfg.Format)
				assert.False(t, cfg.Overrides["core_2d"].Get("bloom"))
				assert.True(t, cfg.Overrides["core_3d"].Get("prepass"))
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "json", cfg.LogFormat)
			},
		},
		{
			name:     "invalid log level",
			args:     []string{"build", "--log-level", "trace"},
			wantCode: 2,
			wantErr:  "invalid log-level",
		},
		{
			name:     "invalid override",
			args:     []string{"build", "--set", "core_2d.bloom=sometimes"},
			wantCode: 2,
			wantErr:  `invalid boolean "sometimes"`,
		},
		{
			name:     "unknown flag",
			args:     []string{"build", "--workers", "4"},
			wantCode: 2,
			wantErr:  "unknown flag: --workers",
		},
		{
			name:     "unknown command",
			args:     []string{"run"},
			wantCode: 2,
			wantErr:  `unknown command "run"`,
		},
		{
			name:     "too many paths",
			args:     []string{"build", "a", "b"},
			wantCode: 2,
			wantErr:  "accepts at most 1 arg",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg, shouldExit, err := Parse(tc.args, &out)

			if tc.wantCode != 0 {
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, tc.wantCode, exitErr.Code)
				assert.Contains(t, exitErr.Message, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantExit, shouldExit)
			if tc.wantOutput != "" {
				assert.Contains(t, out.String(), tc.wantOutput)
			}
			if tc.check != nil {
				require.NotNil(t, cfg)
				tc.check(t, cfg)
			}
		})
	}
}
