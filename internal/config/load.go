package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/pipegraph/internal/ctxlog"
)

// LoadAll loads paths in the order given and merges the results, so a later
// path overrides an earlier one whatever its format. A file goes to every
// loader handling its extension; a directory goes to every loader, in loader
// order. Unlike the individual loaders it is strict about paths: each must
// exist, and a file path must carry an extension one of the loaders handles.
func LoadAll(ctx context.Context, loaders []Loader, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)

	var exts []string
	for _, l := range loaders {
		exts = append(exts, l.Extensions()...)
	}

	dirs := make(map[string]bool, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing config path %s: %w", path, err)
		}
		if !info.IsDir() && !hasAny(path, exts) {
			return nil, fmt.Errorf("config file %s has an unsupported extension %q (supported: %s)",
				path, filepath.Ext(path), strings.Join(exts, ", "))
		}
		dirs[path] = info.IsDir()
	}

	model := NewModel()
	for _, path := range paths {
		for _, l := range loaders {
			if !dirs[path] && !hasAny(path, l.Extensions()) {
				continue
			}
			m, err := l.Load(ctx, path)
			if err != nil {
				return nil, err
			}
			model.Merge(m)
		}
	}
	logger.Debug("Configuration loaded.", "paths", paths, "pipelines", model.Names())
	return model, nil
}

func hasAny(path string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
