// Package assets provides the embedded stylesheets shipped with the viewer.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"strings"
)

//go:embed styles/*
var styles embed.FS

// Sentinel errors for asset operations.
var (
	// ErrStyleNotFound indicates the requested style does not exist.
	ErrStyleNotFound = errors.New("style not found")

	// ErrInvalidAssetName indicates the asset name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")
)

// LoadStyle loads an embedded CSS style by name.
// The name should not include the .css extension or path components.
func LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(content), nil
}

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Returns ErrInvalidAssetName if the name is empty or contains path
// separators, dots, or traversal characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
