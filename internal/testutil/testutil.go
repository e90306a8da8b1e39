// Package testutil provides shared test helpers for building workspace-storage fixtures.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/coderecents/internal/storage"
)

// WriteWorkspace creates root/dir/workspace.json pointing at folder.
func WriteWorkspace(t *testing.T, root, dir, folder string) {
	t.Helper()
	data, err := json.Marshal(map[string]string{"folder": folder})
	if err != nil {
		t.Fatal(err)
	}
	WriteRaw(t, root, dir, string(data))
}

// WriteRaw creates root/dir/workspace.json with arbitrary content.
func WriteRaw(t *testing.T, root, dir, content string) {
	t.Helper()
	sub := filepath.Join(root, dir)
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, storage.MetadataFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// TestStorage creates a temporary workspace-storage directory with a storage.Provider.
func TestStorage(t *testing.T) (string, storage.Provider) {
	t.Helper()
	root := t.TempDir()
	store, err := storage.NewFS(root)
	if err != nil {
		t.Fatal(err)
	}
	return root, store
}

// TestConfigDir creates a temporary config directory holding name with content.
func TestConfigDir(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}
