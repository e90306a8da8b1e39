// Package parser extracts the project folder from workspace.json metadata.
package parser

import (
	"fmt"
	"path"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/starford/coderecents/internal/apperr"
)

// FileScheme is removed from folder URIs to obtain a filesystem path.
const FileScheme = "file://"

// Result holds the output of parsing a workspace.json file.
type Result struct {
	Folder    string // folder URI exactly as stored
	FullPath  string
	ShortName string
}

// Parse reads the "folder" field of a workspace.json document and derives
// the full path and short name. Documents that are not valid JSON, lack a
// string "folder", or name a folder without a final path component yield
// an error wrapping apperr.ErrInvalidEntry.
func Parse(data []byte) (*Result, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parser: %w: malformed json", apperr.ErrInvalidEntry)
	}
	folder := gjson.GetBytes(data, "folder")
	if !folder.Exists() {
		return nil, fmt.Errorf("parser: %w: no folder field", apperr.ErrInvalidEntry)
	}
	if folder.Type != gjson.String {
		return nil, fmt.Errorf("parser: %w: folder is %s, not a string", apperr.ErrInvalidEntry, folder.Type)
	}

	fullPath := strings.ReplaceAll(folder.Str, FileScheme, "")
	short, err := ShortName(fullPath)
	if err != nil {
		return nil, err
	}
	return &Result{
		Folder:    folder.Str,
		FullPath:  fullPath,
		ShortName: short,
	}, nil
}

// ShortName returns the final component of a slash-separated folder path.
// Trailing separators are ignored.
func ShortName(p string) (string, error) {
	trimmed := strings.TrimRight(p, "/")
	if trimmed == "" {
		return "", fmt.Errorf("parser: %w: folder %q has no final component", apperr.ErrInvalidEntry, p)
	}
	base := path.Base(trimmed)
	if base == "." || base == ".." {
		return "", fmt.Errorf("parser: %w: folder %q has no final component", apperr.ErrInvalidEntry, p)
	}
	return base, nil
}
