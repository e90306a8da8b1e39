package index

import (
	"log/slog"

	"github.com/starford/coderecents/internal/parser"
	"github.com/starford/coderecents/internal/storage"
)

// Build scans the storage root once and returns the deduplicated project list:
//   - entries whose workspace.json cannot be read or parsed are skipped
//   - the first entry seen for a full path wins; later duplicates are dropped
//   - ids are assigned densely from 0 in first-occurrence order
//
// Only a failure to list the root itself is returned as an error.
func Build(store storage.Provider, logger *slog.Logger) (*Index, error) {
	entries, err := store.List()
	if err != nil {
		return nil, err
	}

	ix := &Index{}
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		data, err := store.Read(e.Path)
		if err != nil {
			logger.Warn("scan: read failed", slog.String("path", e.Path), slog.String("error", err.Error()))
			continue
		}
		res, err := parser.Parse(data)
		if err != nil {
			logger.Debug("scan: skipped", slog.String("path", e.Path), slog.String("error", err.Error()))
			continue
		}
		if _, dup := seen[res.FullPath]; dup {
			logger.Debug("scan: duplicate", slog.String("path", e.Path), slog.String("folder", res.FullPath))
			continue
		}
		seen[res.FullPath] = struct{}{}
		ix.add(res.FullPath, res.ShortName)
	}

	logger.Debug("scan: done", slog.String("root", store.Root()), slog.Int("projects", ix.Len()))
	return ix, nil
}
