package output

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/indaco/relver/internal/core"
	"github.com/tidwall/sjson"
)

var (
	// ErrOutputUnwritable is returned (wrapped) when the output file cannot be
	// opened or written.
	ErrOutputUnwritable = errors.New("output file is not writable")

	// ErrInvalidPair is returned when a key or value would corrupt the
	// line-oriented output format.
	ErrInvalidPair = errors.New("invalid output pair")
)

// Emitter records named results.
type Emitter interface {
	Emit(ctx context.Context, key, value string) error
	Close() error
}

// validatePair rejects keys and values that cannot be represented as a
// single key=value line.
func validatePair(key, value string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidPair)
	}
	if strings.ContainsAny(key, "=\r\n") {
		return fmt.Errorf("%w: key %q contains '=' or a newline", ErrInvalidPair, key)
	}
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("%w: value for %q contains a newline", ErrInvalidPair, key)
	}
	return nil
}

func formatLine(key, value string) string {
	return key + "=" + value + "\n"
}

// FileEmitter appends one line per Emit call to the file at Path. The file is
// opened and closed on every call, so writes are not atomic across calls.
type FileEmitter struct {
	Path string
	fs   core.FileSystem
}

// NewFileEmitter creates a FileEmitter writing to path through fs.
func NewFileEmitter(fs core.FileSystem, path string) *FileEmitter {
	return &FileEmitter{Path: path, fs: fs}
}

func (e *FileEmitter) Emit(ctx context.Context, key, value string) error {
	if err := validatePair(key, value); err != nil {
		return err
	}
	if err := e.fs.AppendFile(ctx, e.Path, []byte(formatLine(key, value)), core.PermOwnerRW); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputUnwritable, e.Path, err)
	}
	return nil
}

func (e *FileEmitter) Close() error { return nil }

// StdoutEmitter prints key=value lines to W. It is the fallback used when no
// output file is configured.
type StdoutEmitter struct {
	W io.Writer
}

// NewStdoutEmitter creates a StdoutEmitter writing to w.
func NewStdoutEmitter(w io.Writer) *StdoutEmitter {
	return &StdoutEmitter{W: w}
}

func (e *StdoutEmitter) Emit(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validatePair(key, value); err != nil {
		return err
	}
	_, err := io.WriteString(e.W, formatLine(key, value))
	return err
}

func (e *StdoutEmitter) Close() error { return nil }

// JSONEmitter collects pairs and writes them to W as a single JSON object on
// Close, keeping insertion order.
type JSONEmitter struct {
	W   io.Writer
	doc string
}

// NewJSONEmitter creates a JSONEmitter writing to w.
func NewJSONEmitter(w io.Writer) *JSONEmitter {
	return &JSONEmitter{W: w, doc: "{}"}
}

func (e *JSONEmitter) Emit(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validatePair(key, value); err != nil {
		return err
	}
	// Escape path syntax so keys are always treated literally.
	doc, err := sjson.Set(e.doc, escapePath(key), value)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	e.doc = doc
	return nil
}

func (e *JSONEmitter) Close() error {
	_, err := io.WriteString(e.W, e.doc+"\n")
	return err
}

var pathEscaper = strings.NewReplacer(
	`\`, `\\`,
	`.`, `\.`,
	`*`, `\*`,
	`?`, `\?`,
	`|`, `\|`,
	`#`, `\#`,
	`@`, `\@`,
	`:`, `\:`,
)

func escapePath(key string) string {
	return pathEscaper.Replace(key)
}
