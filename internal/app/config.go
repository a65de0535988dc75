package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/pipegraph/internal/report"
	"github.com/specialistvlad/pipegraph/internal/settings"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPaths []string // .hcl / .yaml / .yml files or directories
	Set         []string // raw `pipeline.label=bool` overrides
	Plugins     []string // restricts the build to these plugins; empty is all

	Output    string
	LogFormat string
	LogLevel  string

	// Overrides is Set parsed by NewConfig.
	Overrides map[string]settings.Inclusion
	// Format is Output parsed by NewConfig.
	Format report.Format
}

// NewConfig validates cfg, applies defaults and parses the derived fields.
// All problems are reported together.
func NewConfig(cfg Config) (*Config, error) {
	var errs []error

	if cfg.Output == "" {
		cfg.Output = string(report.FormatText)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	format, err := report.ParseFormat(cfg.Output)
	if err != nil {
		errs = append(errs, err)
	}
	cfg.Format = format

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel))
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat))
	}

	overrides, err := settings.ParseAssignments(cfg.Set)
	if err != nil {
		errs = append(errs, err)
	}
	cfg.Overrides = overrides

	for _, p := range cfg.ConfigPaths {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, errors.New("config path must not be empty"))
			break
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &cfg, nil
}
