package parser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/relver/internal/core"
	"github.com/indaco/relver/internal/semver"
	"github.com/pelletier/go-toml/v2"
)

// Reader reads version fields from manifests.
type Reader struct {
	fs core.FileSystem
}

// NewReader creates a new Reader with the given filesystem.
func NewReader(fs core.FileSystem) *Reader {
	return &Reader{fs: fs}
}

// Read reads the raw version string from a manifest.
func (r *Reader) Read(ctx context.Context, cfg FileConfig) (*Result, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("manifest path is required")
	}
	if cfg.Field == "" {
		return nil, fmt.Errorf("version field is required")
	}

	format := cfg.Format
	if format == "" {
		format = DetectFormat(cfg.Path)
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("invalid format: %s", format)
	}

	data, err := r.fs.ReadFile(ctx, cfg.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ManifestNotFoundError{Path: cfg.Path, Err: err}
		}
		return nil, fmt.Errorf("failed to read manifest %q: %w", cfg.Path, err)
	}

	obj, err := decode(data, format)
	if err != nil {
		return nil, &ManifestParseError{Path: cfg.Path, Format: format, Err: err}
	}

	value, err := getNestedValue(obj, cfg.Field)
	if err != nil {
		var fieldErr *FieldNotFoundError
		if errors.As(err, &fieldErr) {
			fieldErr.Path = cfg.Path
		}
		return nil, err
	}

	version, ok := value.(string)
	if !ok {
		return nil, &FieldNotFoundError{
			Path:   cfg.Path,
			Field:  cfg.Field,
			Reason: fmt.Sprintf("expected a string, got %T", value),
		}
	}

	return &Result{
		Version: version,
		Path:    cfg.Path,
		Format:  format,
		Field:   cfg.Field,
	}, nil
}

// ReadVersion reads the version field and parses it as a semantic version.
func (r *Reader) ReadVersion(ctx context.Context, cfg FileConfig) (semver.SemVersion, error) {
	result, err := r.Read(ctx, cfg)
	if err != nil {
		return semver.SemVersion{}, err
	}

	v, err := semver.ParseVersion(result.Version)
	if err != nil {
		return semver.SemVersion{}, fmt.Errorf("field %q in %s: %w", result.Field, result.Path, err)
	}
	return v, nil
}

// decode unmarshals a manifest into a generic map.
func decode(data []byte, format Format) (map[string]any, error) {
	var obj map[string]any
	var err error

	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &obj)
	case FormatJSON:
		err = json.Unmarshal(data, &obj)
	case FormatYAML:
		err = yaml.Unmarshal(data, &obj)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return nil, err
	}
	if obj == nil {
		// Empty documents decode to nil; treat them as an empty table so the
		// field lookup reports the missing field instead.
		obj = map[string]any{}
	}
	return obj, nil
}

// getNestedValue retrieves a value from a nested map using dot notation.
// Example: "tool.poetry.version" accesses obj["tool"]["poetry"]["version"]
func getNestedValue(obj map[string]any, field string) (any, error) {
	parts := strings.Split(field, ".")
	current := any(obj)

	for i, part := range parts {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil, &FieldNotFoundError{
				Field:  field,
				Reason: fmt.Sprintf("%q is not a table", strings.Join(parts[:i], ".")),
			}
		}

		value, exists := currentMap[part]
		if !exists {
			return nil, &FieldNotFoundError{Field: field}
		}

		current = value
	}

	return current, nil
}
