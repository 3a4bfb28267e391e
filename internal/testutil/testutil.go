// Package testutil provides shared test helpers for setting up journal trees.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/dagaz/internal/storage"
)

// TestJournal creates a temporary journal root with a storage provider.
func TestJournal(t *testing.T) (string, *storage.FS) {
	t.Helper()
	root := t.TempDir()
	store, err := storage.NewFS(root)
	if err != nil {
		t.Fatal(err)
	}
	return root, store
}

// SeedEntry writes an entry file into root/year/month, creating the
// directories, and returns its path. year and month are folder names so
// tests can also seed malformed structures.
func SeedEntry(t *testing.T, root, year, month, name, content string) string {
	t.Helper()
	dir := filepath.Join(root, year, month)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
