package hcl

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/pipegraph/internal/config"
	"github.com/specialistvlad/pipegraph/internal/ctxlog"
	"github.com/specialistvlad/pipegraph/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".hcl"}
}

// Load parses every .hcl file under paths and merges their pipeline blocks
// into one model. Paths that do not exist are skipped. Files are merged in
// path order, so later files override earlier ones label by label.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := config.NewModel()
	parser := hclparse.NewParser()

	for _, path := range paths {
		files, err := fsutil.FindFilesByExtension(path, l.Extensions()...)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue // It's not an error if a configured path doesn't exist.
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		logger.Debug("Discovered HCL files.", "path", path, "count", len(files))

		for _, file := range files {
			hclFile, diags := parser.ParseHCLFile(file)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
			}

			var root fileRoot
			diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
			}

			fileModel := config.NewModel()
			for _, block := range root.Pipelines {
				p, err := translatePipeline(ctx, block, file)
				if err != nil {
					return nil, err
				}
				// Repeated blocks in one file merge like separate files.
				fileModel.Merge(&config.Model{Pipelines: map[string]*config.Pipeline{p.Name: p}})
			}
			model.Merge(fileModel)
		}
	}

	logger.Debug("HCL loading complete.", "pipelines", model.Names())
	return model, nil
}
