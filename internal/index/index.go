// Package index holds the in-memory project list built from a workspace-storage
// scan, together with the ranking strategies used to match queries against it.
package index

import "github.com/starford/coderecents/internal/models"

// ProjectIndex defines the read operations over a scanned project list.
// Consumers should depend on this interface rather than the concrete *Index
// type to facilitate testing with fakes.
type ProjectIndex interface {
	Projects() []models.Project
	Lookup(id uint64) (models.Project, error)
	Search(query string, strategy Strategy, limit int) []models.Project
	Len() int
}

// Verify *Index satisfies ProjectIndex at compile time.
var _ ProjectIndex = (*Index)(nil)
