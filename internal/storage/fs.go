package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/starford/coderecents/internal/models"
)

// FS implements Provider backed by the local file system.
type FS struct {
	root string // absolute path to the workspace-storage directory
}

// NewFS creates a new FS provider rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: root is not a directory: %s", abs)
	}
	return &FS{root: abs}, nil
}

// Root returns the absolute storage root.
func (f *FS) Root() string {
	return f.root
}

// List reads the immediate children of the root and returns one entry per
// subdirectory holding a regular MetadataFile. Children that cannot be
// inspected are skipped.
func (f *FS) List() ([]models.WorkspaceEntry, error) {
	entries, err := os.ReadDir(f.root)
	if err != nil {
		return nil, fmt.Errorf("storage: list: %w", err)
	}
	var out []models.WorkspaceEntry
	for _, entry := range entries {
		if !isDirOrSymlink(entry, f.root) {
			continue
		}
		rel := filepath.Join(entry.Name(), MetadataFile)
		info, err := os.Stat(filepath.Join(f.root, rel))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		out = append(out, models.WorkspaceEntry{
			Dir:  entry.Name(),
			Path: rel,
		})
	}
	return out, nil
}

// Read returns the contents of a workspace entry's metadata file. rel is
// the entry Path produced by List; anything resolving outside the root is
// rejected with ErrOutsideRoot.
func (f *FS) Read(rel string) ([]byte, error) {
	abs := filepath.Join(f.root, filepath.Clean(rel))
	if filepath.IsAbs(rel) || !strings.HasPrefix(abs, f.root+string(os.PathSeparator)) {
		return nil, fmt.Errorf("storage: read %s: %w", rel, ErrOutsideRoot)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", rel, err)
	}
	return data, nil
}

// isDirOrSymlink reports whether the entry is a directory or a symlink
// that resolves to a directory.
func isDirOrSymlink(entry os.DirEntry, parentDir string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(filepath.Join(parentDir, entry.Name()))
	return err == nil && fi.IsDir()
}
