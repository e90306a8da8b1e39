package index

import (
	"fmt"

	"github.com/starford/coderecents/internal/apperr"
	"github.com/starford/coderecents/internal/models"
)

// Index is an immutable, in-memory list of projects from one scan.
// ids equal positions in the list.
type Index struct {
	projects []models.Project
}

// New builds an Index from already-derived projects, re-assigning ids by
// position. It does not deduplicate.
func New(projects ...models.Project) *Index {
	ix := &Index{}
	for _, p := range projects {
		ix.add(p.FullPath, p.ShortName)
	}
	return ix
}

func (ix *Index) add(fullPath, shortName string) {
	ix.projects = append(ix.projects, models.Project{
		ID:        uint64(len(ix.projects)),
		FullPath:  fullPath,
		ShortName: shortName,
	})
}

// Projects returns a copy of the project list in scan order.
func (ix *Index) Projects() []models.Project {
	out := make([]models.Project, len(ix.projects))
	copy(out, ix.projects)
	return out
}

// Len returns the number of projects.
func (ix *Index) Len() int {
	return len(ix.projects)
}

// Lookup returns the project carrying id.
func (ix *Index) Lookup(id uint64) (models.Project, error) {
	if id >= uint64(len(ix.projects)) {
		return models.Project{}, fmt.Errorf("index: project %d: %w", id, apperr.ErrNotFound)
	}
	return ix.projects[id], nil
}
