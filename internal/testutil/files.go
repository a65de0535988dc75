package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testLogsEnabled() bool {
	return os.Getenv("PIPEGRAPH_TEST_LOGS") == "true"
}

// WriteFiles creates a temporary directory holding the given files. Names are
// relative paths, so "conf/core.hcl" creates the conf subdirectory.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}
	return dir
}
