package printer

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// TestRenderFunctions verifies that all render functions keep the input text.
func TestRenderFunctions(t *testing.T) {
	tests := []struct {
		name     string
		function func(string) string
		input    string
	}{
		{"Faint", Faint, "test text"},
		{"Bold", Bold, "test text"},
		{"Success", Success, "test text"},
		{"Error", Error, "test text"},
		{"Warning", Warning, "test text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.function(tt.input)
			if !strings.Contains(result, tt.input) {
				t.Errorf("%s() result does not contain input text. got %q, want to contain %q", tt.name, result, tt.input)
			}
		})
	}
}

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestSetNoColor(t *testing.T) {
	t.Cleanup(func() { SetNoColor(false, lookupFrom(nil)) })

	SetNoColor(true, lookupFrom(nil))
	if got := Error("plain"); got != "plain" {
		t.Errorf("Error() with no color = %q, want %q", got, "plain")
	}
}

func TestSetNoColor_NoColorEnv(t *testing.T) {
	t.Cleanup(func() { SetNoColor(false, lookupFrom(nil)) })

	tests := []struct {
		name string
		env  map[string]string
	}{
		{"set", map[string]string{"NO_COLOR": "1"}},
		{"set with flag off", map[string]string{"NO_COLOR": "true", "TERM": "xterm-256color"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetNoColor(false, lookupFrom(tt.env))
			if got := Success("plain"); got != "plain" {
				t.Errorf("Success() with NO_COLOR = %q, want %q", got, "plain")
			}
		})
	}
}

func TestFprintError(t *testing.T) {
	t.Cleanup(func() { SetNoColor(false, lookupFrom(nil)) })
	SetNoColor(true, lookupFrom(nil))

	var buf bytes.Buffer
	FprintError(&buf, errors.New("manifest not found: Cargo.toml"))

	want := "error: manifest not found: Cargo.toml\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestFprintWarning(t *testing.T) {
	t.Cleanup(func() { SetNoColor(false, lookupFrom(nil)) })
	SetNoColor(true, lookupFrom(nil))

	var buf bytes.Buffer
	FprintWarning(&buf, "--json is ignored")

	want := "warning: --json is ignored\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestFprintSummary(t *testing.T) {
	t.Cleanup(func() { SetNoColor(false, lookupFrom(nil)) })
	SetNoColor(true, lookupFrom(nil))

	var buf bytes.Buffer
	FprintSummary(&buf, "1.0.0-rc.1", "Cargo.toml", "/runner/output")

	want := "✓ 1.0.0-rc.1 from Cargo.toml written to /runner/output\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}
