package parser

import (
	"path/filepath"
	"strings"
)

// Format represents the supported manifest formats.
type Format string

const (
	// FormatTOML is for TOML files (Cargo.toml, pyproject.toml, etc.).
	FormatTOML Format = "toml"

	// FormatJSON is for JSON files (package.json, etc.).
	FormatJSON Format = "json"

	// FormatYAML is for YAML files (Chart.yaml, etc.).
	FormatYAML Format = "yaml"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatTOML, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// DetectFormat picks a format from the file extension, falling back to TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// FileConfig describes how to read a version from a manifest.
type FileConfig struct {
	// Path is the manifest path (absolute or relative).
	Path string

	// Format specifies the file format. Empty means DetectFormat(Path).
	Format Format

	// Field is the dot-notation path to the version field.
	// Example: "package.version", "tool.poetry.version"
	Field string
}

// Result represents the result of reading a version from a manifest.
type Result struct {
	// Version is the extracted version string, untouched.
	Version string

	// Path is the file path that was read.
	Path string

	// Format is the format that was used.
	Format Format

	// Field is the field path that was used.
	Field string
}
