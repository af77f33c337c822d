// Package fileutil provides file and path utility functions.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// EnsureDir creates the directory (and parents) if it does not exist.
func EnsureDir(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(path, 0o750); err != nil {
		return fmt.Errorf("creating directory %q: %w", path, err)
	}
	return nil
}

// ReplaceExtension swaps a path's extension, e.g. "doc.md" + ".html".
func ReplaceExtension(path, newExt string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + newExt
}
