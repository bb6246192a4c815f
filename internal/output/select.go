package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/indaco/relver/internal/core"
)

// DefaultEnvVar is the environment variable GitHub Actions uses for step outputs.
const DefaultEnvVar = "GITHUB_OUTPUT"

// ErrOutputNotConfigured is returned by Select when an output file is required
// but the environment variable is unset.
var ErrOutputNotConfigured = errors.New("output file not configured")

// Target identifies which sink Select picked.
type Target string

const (
	TargetFile   Target = "file"
	TargetStdout Target = "stdout"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Options controls sink selection.
type Options struct {
	// EnvVar names the variable holding the output file path.
	// Defaults to DefaultEnvVar.
	EnvVar string

	// Require makes an unset variable an error instead of falling back to stdout.
	Require bool

	// JSON prints a single JSON object in stdout mode.
	JSON bool
}

// Selection is the outcome of Select.
type Selection struct {
	Emitter Emitter
	Target  Target
	// Path is the output file path when Target is TargetFile.
	Path string
}

// Select chooses the emitter from the environment: a FileEmitter when the
// variable is set to a non-empty path, a stdout emitter otherwise.
func Select(lookup LookupFunc, fs core.FileSystem, stdout io.Writer, opts Options) (*Selection, error) {
	envVar := opts.EnvVar
	if envVar == "" {
		envVar = DefaultEnvVar
	}

	if path, ok := lookup(envVar); ok && path != "" {
		return &Selection{
			Emitter: NewFileEmitter(fs, path),
			Target:  TargetFile,
			Path:    path,
		}, nil
	}

	if opts.Require {
		return nil, fmt.Errorf("%w: $%s is not set", ErrOutputNotConfigured, envVar)
	}

	if opts.JSON {
		return &Selection{Emitter: NewJSONEmitter(stdout), Target: TargetStdout}, nil
	}
	return &Selection{Emitter: NewStdoutEmitter(stdout), Target: TargetStdout}, nil
}
