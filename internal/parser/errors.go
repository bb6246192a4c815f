package parser

import "fmt"

// ManifestNotFoundError indicates that the manifest file does not exist.
type ManifestNotFoundError struct {
	Path string
	Err  error
}

func (e *ManifestNotFoundError) Error() string {
	return fmt.Sprintf("manifest not found: %s", e.Path)
}

// Unwrap returns the underlying error
func (e *ManifestNotFoundError) Unwrap() error {
	return e.Err
}

// ManifestParseError indicates that a manifest is not a well-formed document
// of its format.
type ManifestParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ManifestParseError) Error() string {
	return fmt.Sprintf("failed to parse %s manifest %s: %v", e.Format, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *ManifestParseError) Unwrap() error {
	return e.Err
}

// FieldNotFoundError indicates that the version field is absent from the
// manifest, or is present but does not hold a string.
type FieldNotFoundError struct {
	Path   string
	Field  string
	Reason string
}

func (e *FieldNotFoundError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("field %q in %s: %s", e.Field, e.Path, e.Reason)
	}
	return fmt.Sprintf("field %q not found in %s", e.Field, e.Path)
}
