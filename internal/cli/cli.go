package cli

import (
	"errors"
	"io"
	"log/slog"

	"github.com/specialistvlad/pipegraph/internal/app"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly (help was shown),
// or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var parsed *app.Config
	root := newRootCmd(func(c *app.Config) { parsed = c })
	root.SetOut(output)
	root.SetErr(output)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, false, exitErr
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if parsed == nil {
		slog.Debug("No build requested, exiting.")
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", parsed)
	return parsed, false, nil
}

func newRootCmd(onBuild func(*app.Config)) *cobra.Command {
	root := &cobra.Command{
		Use:   "pipegraph",
		Short: "Assemble render graphs from declarative pipeline settings",
		Long: `pipegraph assembles a render graph from the compiled-in pipeline plugins.
Each plugin filters its ordered stage catalogue with the configured inclusion
settings and wires the remaining stages into its sub-graph. The assembled
graph is validated and printed as a report.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(newBuildCmd(onBuild))
	return root
}

func newBuildCmd(onBuild func(*app.Config)) *cobra.Command {
	var (
		configPaths []string
		set         []string
		plugins     []string
		output      string
		logLevel    string
		logFormat   string
	)

	cmd := &cobra.Command{
		Use:   "build [CONFIG_PATH]",
		Short: "Build, validate and print the render graph",
		Long: `Build runs every selected plugin against a fresh render graph.

CONFIG_PATH (or --config) is a .hcl, .yaml or .yml file, or a directory
searched recursively for them. Stage settings given with --set override the
files, e.g. --set core_2d.bloom=false.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			paths := append([]string(nil), configPaths...)
			paths = append(paths, args...)

			cfg, err := app.NewConfig(app.Config{
				ConfigPaths: paths,
				Set:         set,
				Plugins:     plugins,
				Output:      output,
				LogLevel:    logLevel,
				LogFormat:   logFormat,
			})
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			onBuild(cfg)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVarP(&configPaths, "config", "c", nil, "Path to a config file or directory. Repeatable.")
	flags.StringArrayVar(&set, "set", nil, "Stage inclusion override as pipeline.label=true|false. Repeatable.")
	flags.StringSliceVar(&plugins, "plugins", nil, "Comma-separated plugins to build. Default is all.")
	flags.StringVarP(&output, "output", "o", "text", "Report format. Options: 'text', 'json', 'yaml' or 'dot'.")
	flags.StringVar(&logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	return cmd
}
