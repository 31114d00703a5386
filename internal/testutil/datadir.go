package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteDataDir creates a temp directory holding one file per entry of docs,
// keyed by filename. Values are written verbatim, so tests can plant both
// valid JSON documents and malformed ones.
func WriteDataDir(t *testing.T, docs map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range docs {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}
