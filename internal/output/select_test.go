package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/indaco/relver/internal/core"
)

func lookupFrom(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name       string
		env        map[string]string
		opts       Options
		wantTarget Target
		wantType   string
		wantPath   string
		wantErr    error
	}{
		{
			name:       "default variable set",
			env:        map[string]string{"GITHUB_OUTPUT": "/tmp/out"},
			wantTarget: TargetFile,
			wantType:   "file",
			wantPath:   "/tmp/out",
		},
		{
			name:       "unset falls back to stdout",
			env:        map[string]string{},
			wantTarget: TargetStdout,
			wantType:   "stdout",
		},
		{
			name:       "empty value falls back to stdout",
			env:        map[string]string{"GITHUB_OUTPUT": ""},
			wantTarget: TargetStdout,
			wantType:   "stdout",
		},
		{
			name:       "custom variable",
			env:        map[string]string{"GITHUB_OUTPUT": "/ignored", "CI_OUTPUT": "/tmp/ci"},
			opts:       Options{EnvVar: "CI_OUTPUT"},
			wantTarget: TargetFile,
			wantType:   "file",
			wantPath:   "/tmp/ci",
		},
		{
			name:       "json fallback",
			env:        map[string]string{},
			opts:       Options{JSON: true},
			wantTarget: TargetStdout,
			wantType:   "json",
		},
		{
			name:       "json ignored when file configured",
			env:        map[string]string{"GITHUB_OUTPUT": "/tmp/out"},
			opts:       Options{JSON: true},
			wantTarget: TargetFile,
			wantType:   "file",
			wantPath:   "/tmp/out",
		},
		{
			name:    "required but unset",
			env:     map[string]string{},
			opts:    Options{Require: true},
			wantErr: ErrOutputNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := Select(lookupFrom(tt.env), core.NewMockFileSystem(), &bytes.Buffer{}, tt.opts)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if sel.Target != tt.wantTarget {
				t.Errorf("Target = %q, want %q", sel.Target, tt.wantTarget)
			}
			if sel.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", sel.Path, tt.wantPath)
			}

			var gotType string
			switch sel.Emitter.(type) {
			case *FileEmitter:
				gotType = "file"
			case *StdoutEmitter:
				gotType = "stdout"
			case *JSONEmitter:
				gotType = "json"
			}
			if gotType != tt.wantType {
				t.Errorf("emitter type = %q, want %q", gotType, tt.wantType)
			}
		})
	}
}
