// Package parser reads the version string out of a project manifest.
// TOML is the primary format (Cargo.toml, pyproject.toml); JSON and YAML
// manifests are supported through the same dot-notation field lookup.
package parser
