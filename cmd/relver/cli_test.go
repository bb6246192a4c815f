package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/indaco/relver/internal/config"
	"github.com/indaco/relver/internal/output"
	"github.com/indaco/relver/internal/semver"
)

// setupProject creates a temporary project directory with the given
// Cargo.toml content and makes it the working directory.
func setupProject(t *testing.T, cargo string) string {
	t.Helper()
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, "Cargo.toml"), []byte(cargo), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(tmp)
	t.Setenv("GITHUB_OUTPUT", "")
	t.Setenv(config.EnvManifest, "")
	t.Setenv(config.EnvField, "")
	t.Setenv(config.EnvOutputEnv, "")
	return tmp
}

// captureStdout runs fn with os.Stdout redirected and returns what was written.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old
	out, _ := io.ReadAll(r)
	return string(out)
}

func TestRunCLI_AppendsToGitHubOutput(t *testing.T) {
	tmp := setupProject(t, "[package]\nname = \"uni\"\nversion = \"2.5.0-rc.1\"\n")

	outPath := filepath.Join(tmp, "github_output")
	if err := os.WriteFile(outPath, []byte("earlier=1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GITHUB_OUTPUT", outPath)

	if err := runCLI([]string{"relver"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	want := "earlier=1\nversion=2.5.0-rc.1\nprerelease=true\n"
	if string(got) != want {
		t.Errorf("output file = %q, want %q", got, want)
	}
}

func TestRunCLI_PrintsWhenOutputUnset(t *testing.T) {
	setupProject(t, "[package]\nversion = \"2.5.0\"\n")

	var err error
	out := captureStdout(t, func() {
		err = runCLI([]string{"relver"})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "version=2.5.0\nprerelease=false\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestRunCLI_UsesConfigFile(t *testing.T) {
	tmp := setupProject(t, "[package]\nversion = \"9.9.9\"\n")
	if err := os.WriteFile(filepath.Join(tmp, "package.json"), []byte(`{"version": "0.2.0-beta.4"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmp, config.FileName), []byte("manifest: package.json\nfield: version\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var err error
	out := captureStdout(t, func() {
		err = runCLI([]string{"relver"})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "version=0.2.0-beta.4\nprerelease=true\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestRunCLI_InvalidVersionFails(t *testing.T) {
	tmp := setupProject(t, "[package]\nversion = \"1.0\"\n")
	outPath := filepath.Join(tmp, "github_output")
	t.Setenv("GITHUB_OUTPUT", outPath)

	err := runCLI([]string{"relver"})
	if !errors.Is(err, semver.ErrInvalidVersion) {
		t.Fatalf("expected ErrInvalidVersion, got %v", err)
	}
	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Error("output file must not be created when the version is invalid")
	}
}

func TestRunCLI_UnwritableOutputFails(t *testing.T) {
	tmp := setupProject(t, "[package]\nversion = \"1.0.0\"\n")

	// A regular file used as a directory fails even for privileged users.
	t.Setenv("GITHUB_OUTPUT", filepath.Join(tmp, "Cargo.toml", "out"))

	err := runCLI([]string{"relver"})
	if !errors.Is(err, output.ErrOutputUnwritable) {
		t.Fatalf("expected ErrOutputUnwritable, got %v", err)
	}
}

func TestRunCLI_InvalidConfigFile(t *testing.T) {
	tmp := setupProject(t, "[package]\nversion = \"1.0.0\"\n")
	if err := os.WriteFile(filepath.Join(tmp, config.FileName), []byte("unknown-key: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCLI([]string{"relver"}); err == nil {
		t.Fatal("expected error for invalid config file, got nil")
	}
}
