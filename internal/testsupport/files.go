package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteDictionary writes CMU pronouncing dictionary lines to path, one entry
// per line.
func WriteDictionary(t testing.TB, path string, lines ...string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
