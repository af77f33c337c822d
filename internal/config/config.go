// Package config loads YAML configuration for the md2view CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2view/internal/fileutil"
	"github.com/alnah/go-md2view/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxStyleNameLength = 100  // embedded or chroma style name
	MaxPathLength      = 2048 // output paths
)

// Config holds all configuration for document rendering.
type Config struct {
	Style  StyleConfig  `yaml:"style"`
	Output OutputConfig `yaml:"output"`
}

// StyleConfig defines stylesheet and theme options.
type StyleConfig struct {
	Light    string `yaml:"light"`    // chroma style for light mode (default: "github")
	Dark     string `yaml:"dark"`     // chroma style for dark mode (default: "monokai")
	DarkMode bool   `yaml:"darkMode"` // start in dark mode
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // default output directory (empty = alongside input)
	TOC bool   `yaml:"toc"` // also write the anchor tree as JSON
}

// Validate checks field lengths and names.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("style.light", c.Style.Light, MaxStyleNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("style.dark", c.Style.Dark, MaxStyleNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{
		Style:  StyleConfig{},
		Output: OutputConfig{},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2view/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-md2view", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
