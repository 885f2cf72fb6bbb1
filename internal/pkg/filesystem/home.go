// Package filesystem resolves the per-user paths tams writes to.
package filesystem

import (
	"os"
	"path/filepath"
	"strings"
)

// UserHomeDir returns the current user's home directory.
// If the home directory cannot be determined, it returns "." as a fallback.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// ExpandHome replaces a leading "~" with the home directory and cleans the result.
// Absolute paths and the empty string are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if path == "~" {
		return UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

// EnsureParent creates the directory that will hold path.
func EnsureParent(path string, perm os.FileMode) error {
	return os.MkdirAll(filepath.Dir(path), perm)
}
