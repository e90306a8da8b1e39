// Package models defines the domain types for coderecents.
package models

// Project is one recently opened editor workspace.
type Project struct {
	ID        uint64 `json:"id"`
	FullPath  string `json:"full_path"`
	ShortName string `json:"short_name"`
}

// WorkspaceEntry is a workspace-storage subdirectory that carries a
// workspace.json file.
type WorkspaceEntry struct {
	Dir  string `json:"dir"`  // subdirectory name, relative to the storage root
	Path string `json:"path"` // workspace.json path, relative to the storage root
}
