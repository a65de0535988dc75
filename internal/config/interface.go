package config

import (
	"context"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths (files or directories),
	// ignoring files whose format it does not handle, and translates it into
	// the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)

	// Extensions lists the file extensions the loader handles, e.g. ".hcl".
	Extensions() []string
}
