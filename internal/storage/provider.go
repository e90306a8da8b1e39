// Package storage defines the workspace-storage file-system abstraction.
package storage

import (
	"errors"

	"github.com/starford/coderecents/internal/models"
)

// MetadataFile is the per-workspace metadata file the editor writes.
const MetadataFile = "workspace.json"

// ErrOutsideRoot is returned by Read for paths that leave the storage root.
var ErrOutsideRoot = errors.New("path outside storage root")

// Provider is the interface for workspace-storage read operations.
type Provider interface {
	// List returns every immediate subdirectory of the storage root that
	// holds a MetadataFile, in directory order.
	List() ([]models.WorkspaceEntry, error)
	// Read returns the raw bytes of the file at path (relative to the storage root).
	Read(path string) ([]byte, error)
	// Root returns the absolute storage root.
	Root() string
}
