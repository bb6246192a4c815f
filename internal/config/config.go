package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// FileName is the optional configuration file looked up in the working directory.
const FileName = ".relver.yaml"

// Defaults mirror a Rust project released from GitHub Actions.
const (
	DefaultManifest  = "Cargo.toml"
	DefaultField     = "package.version"
	DefaultOutputEnv = "GITHUB_OUTPUT"
)

// Environment variables that override the configuration file.
const (
	EnvManifest  = "RELVER_MANIFEST"
	EnvField     = "RELVER_FIELD"
	EnvOutputEnv = "RELVER_OUTPUT_ENV"
)

// Config is the main configuration structure for relver.
type Config struct {
	// Manifest is the path of the file holding the version.
	Manifest string `yaml:"manifest"`

	// Field is the dot-notation path of the version inside the manifest.
	Field string `yaml:"field"`

	// Format forces the manifest format (toml, json, yaml). Empty means
	// detect from the file extension.
	Format string `yaml:"format,omitempty"`

	// OutputEnv names the environment variable holding the output file path.
	OutputEnv string `yaml:"output-env"`

	// RequireOutput fails the run when OutputEnv is unset instead of printing
	// to stdout.
	RequireOutput bool `yaml:"require-output,omitempty"`

	// JSON prints a single JSON object when falling back to stdout.
	JSON bool `yaml:"json,omitempty"`

	// MinVersion fails the run when the manifest version has lower precedence.
	MinVersion string `yaml:"min-version,omitempty"`
}

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		Manifest:  DefaultManifest,
		Field:     DefaultField,
		OutputEnv: DefaultOutputEnv,
	}
}

// LoadConfigFn loads the configuration from the working directory.
// It is a variable so tests can substitute it.
var LoadConfigFn = func() (*Config, error) {
	return Load(FileName, os.LookupEnv)
}

// Load builds the configuration from defaults, the YAML file at path (if it
// exists) and environment overrides, in increasing priority.
func Load(path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// fallback to defaults
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := applyEnv(cfg, lookup); err != nil {
		return nil, err
	}

	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(cfg); err != nil {
		return err
	}

	// Keys present but left empty fall back to defaults.
	def := Default()
	if cfg.Manifest == "" {
		cfg.Manifest = def.Manifest
	}
	if cfg.Field == "" {
		cfg.Field = def.Field
	}
	if cfg.OutputEnv == "" {
		cfg.OutputEnv = def.OutputEnv
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if lookup == nil {
		return nil
	}

	if envPath, ok := lookup(EnvManifest); ok && envPath != "" {
		cleanPath := filepath.Clean(envPath)
		// Reject relative paths with traversal (use absolute paths instead)
		if !filepath.IsAbs(cleanPath) && strings.Contains(cleanPath, "..") {
			return fmt.Errorf("invalid %s: path traversal not allowed, use absolute path instead", EnvManifest)
		}
		cfg.Manifest = cleanPath
	}
	if field, ok := lookup(EnvField); ok && field != "" {
		cfg.Field = field
	}
	if name, ok := lookup(EnvOutputEnv); ok && name != "" {
		cfg.OutputEnv = name
	}
	return nil
}
