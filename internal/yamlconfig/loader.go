// Package yamlconfig implements the config.Loader interface for YAML files.
//
//	pipelines:
//	  core_2d:
//	    sub_graph: sprites
//	    stages: { bloom: false }
package yamlconfig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/specialistvlad/pipegraph/internal/config"
	"github.com/specialistvlad/pipegraph/internal/ctxlog"
	"github.com/specialistvlad/pipegraph/internal/fsutil"
	"github.com/specialistvlad/pipegraph/internal/settings"
	"gopkg.in/yaml.v3"
)

// FileConfig represents the structure of one YAML configuration file.
type FileConfig struct {
	Pipelines map[string]PipelineConfig `yaml:"pipelines"`
}

// PipelineConfig is one entry under `pipelines`.
type PipelineConfig struct {
	SubGraph string          `yaml:"sub_graph"`
	Stages   map[string]bool `yaml:"stages"`
}

// Loader is the YAML implementation of config.Loader.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Load reads every YAML file under paths and merges them in path order.
// Paths that do not exist are skipped.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := config.NewModel()

	for _, path := range paths {
		files, err := fsutil.FindFilesByExtension(path, l.Extensions()...)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		for _, file := range files {
			fm, err := loadFile(file)
			if err != nil {
				return nil, err
			}
			model.Merge(fm)
		}
	}

	logger.Debug("YAML loading complete.", "pipelines", model.Names())
	return model, nil
}

func loadFile(path string) (*config.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
	}

	var fc FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}

	names := make([]string, 0, len(fc.Pipelines))
	for name := range fc.Pipelines {
		names = append(names, name)
	}
	sort.Strings(names)

	model := config.NewModel()
	for _, name := range names {
		pc := fc.Pipelines[name]
		model.Pipelines[name] = &config.Pipeline{
			Name:     name,
			SubGraph: pc.SubGraph,
			Stages:   settings.New(pc.Stages),
			Source:   path,
		}
	}
	return model, nil
}
