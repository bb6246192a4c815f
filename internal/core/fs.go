// Package core holds the filesystem abstraction shared by the manifest reader
// and the output emitter.
package core

import (
	"context"
	"fmt"
	"os"
)

// FileMode is an alias so callers don't need to import os for permissions.
type FileMode = os.FileMode

// PermOwnerRW is used for files relver creates (owner read/write only).
const PermOwnerRW FileMode = 0o600

// FileSystem abstracts the file operations relver performs.
type FileSystem interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	// AppendFile opens path in append mode (creating it if needed), writes data
	// with a single write call and closes the file again.
	AppendFile(ctx context.Context, path string, data []byte, perm FileMode) error
}

// OSFileSystem is the production implementation of FileSystem.
type OSFileSystem struct{}

// NewOSFileSystem creates a FileSystem backed by the operating system.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// ReadFile reads the whole file at path.
func (OSFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// AppendFile appends data to path. The handle is closed on every return path;
// a close error is reported only if the write itself succeeded.
func (OSFileSystem) AppendFile(ctx context.Context, path string, data []byte, perm FileMode) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %q: %w", path, cerr)
		}
	}()

	_, err = f.Write(data)
	return err
}
