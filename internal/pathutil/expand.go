// Package pathutil holds small helpers for user-supplied paths.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandUser expands a leading ~ to the current user's home directory.
// Paths of the form ~user are returned unchanged.
func ExpandUser(path string) string {
	if path == "" || !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(os.PathSeparator)) {
		return filepath.Join(home, path[2:])
	}
	return path
}
