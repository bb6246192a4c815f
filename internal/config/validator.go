package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/indaco/relver/internal/parser"
	"github.com/indaco/relver/internal/semver"
)

var envNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidationError lists every problem found in a configuration.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid configuration: " + strings.Join(e.Problems, "; ")
}

// Validate checks the configuration and returns a *ValidationError when any
// check fails.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Manifest) == "" {
		problems = append(problems, "manifest path is empty")
	}

	if c.Field == "" {
		problems = append(problems, "version field is empty")
	} else if strings.Contains("."+c.Field+".", "..") {
		problems = append(problems, fmt.Sprintf("version field %q has an empty segment", c.Field))
	}

	if c.Format != "" && !parser.Format(c.Format).IsValid() {
		problems = append(problems, fmt.Sprintf("unknown format %q (expected toml, json or yaml)", c.Format))
	}

	if !envNameRegex.MatchString(c.OutputEnv) {
		problems = append(problems, fmt.Sprintf("output-env %q is not a valid environment variable name", c.OutputEnv))
	}

	if c.MinVersion != "" {
		if _, err := semver.ParseVersion(c.MinVersion); err != nil {
			problems = append(problems, fmt.Sprintf("min-version: %v", err))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// ManifestConfig returns the parser configuration for the manifest.
func (c *Config) ManifestConfig() parser.FileConfig {
	return parser.FileConfig{
		Path:   c.Manifest,
		Format: parser.Format(c.Format),
		Field:  c.Field,
	}
}
