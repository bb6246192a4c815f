// Package release turns a manifest version into the outputs a CI pipeline
// consumes: the version string and whether it is a pre-release.
package release

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/indaco/relver/internal/logging"
	"github.com/indaco/relver/internal/output"
	"github.com/indaco/relver/internal/parser"
	"github.com/indaco/relver/internal/semver"
)

// Output keys, emitted in this order.
const (
	KeyVersion    = "version"
	KeyPrerelease = "prerelease"
)

// ErrVersionTooLow is returned when the manifest version has lower precedence
// than the configured minimum.
var ErrVersionTooLow = errors.New("version is lower than the required minimum")

// Output is a single named result.
type Output struct {
	Key   string
	Value string
}

// Outputs derives the ordered results for v.
func Outputs(v semver.SemVersion) []Output {
	return []Output{
		{Key: KeyVersion, Value: v.String()},
		{Key: KeyPrerelease, Value: strconv.FormatBool(v.IsPreRelease())},
	}
}

// Options configures a Run.
type Options struct {
	Reader   *parser.Reader
	Manifest parser.FileConfig
	Emitter  output.Emitter

	// MinVersion, when set, rejects manifest versions with lower precedence.
	MinVersion *semver.SemVersion
}

// Summary describes a completed run.
type Summary struct {
	Manifest string
	Version  semver.SemVersion
	Outputs  []Output
}

// Run reads the manifest version and emits its outputs. Nothing is emitted
// unless the manifest was read and the version parsed successfully.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	if opts.Reader == nil {
		return nil, fmt.Errorf("manifest reader is required")
	}
	if opts.Emitter == nil {
		return nil, fmt.Errorf("output emitter is required")
	}

	logging.Debug("reading manifest", "path", opts.Manifest.Path, "field", opts.Manifest.Field)

	v, err := opts.Reader.ReadVersion(ctx, opts.Manifest)
	if err != nil {
		return nil, err
	}
	logging.Debug("parsed version", "version", v.String(), "prerelease", v.IsPreRelease())

	if opts.MinVersion != nil && v.Compare(*opts.MinVersion) < 0 {
		return nil, fmt.Errorf("%w: %s < %s", ErrVersionTooLow, v, opts.MinVersion)
	}

	outputs := Outputs(v)
	for _, o := range outputs {
		if err := opts.Emitter.Emit(ctx, o.Key, o.Value); err != nil {
			return nil, err
		}
		logging.Debug("emitted output", "key", o.Key, "value", o.Value)
	}

	if err := opts.Emitter.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush outputs: %w", err)
	}
	logging.Info("outputs written", "version", v.String(), "count", len(outputs))

	return &Summary{
		Manifest: opts.Manifest.Path,
		Version:  v,
		Outputs:  outputs,
	}, nil
}
