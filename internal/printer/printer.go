package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Style definitions for consistent console output across the application.
var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
)

// SetNoColor disables (or re-enables) ANSI styling for every render function.
// A non-empty NO_COLOR, read through lookup, always wins. A nil lookup uses
// os.LookupEnv.
func SetNoColor(disabled bool, lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, _ := lookup("NO_COLOR"); disabled || v != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// Render functions return styled strings without printing.

// Faint returns text with faint styling.
func Faint(text string) string {
	return faintStyle.Render(text)
}

// Bold returns text with bold styling.
func Bold(text string) string {
	return boldStyle.Render(text)
}

// Success returns text with success (green) styling.
func Success(text string) string {
	return successStyle.Render(text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return errorStyle.Render(text)
}

// Warning returns text with warning (yellow) styling.
func Warning(text string) string {
	return warningStyle.Render(text)
}

// Fprint functions write styled text followed by a newline to w.
// They are meant for stderr; stdout carries only results.

// FprintError writes "error: <err>" in error styling.
func FprintError(w io.Writer, err error) {
	fmt.Fprintln(w, Error("error: "+err.Error()))
}

// FprintWarning writes "warning: <text>" in warning styling.
func FprintWarning(w io.Writer, text string) {
	fmt.Fprintln(w, Warning("warning: "+text))
}

// FprintSummary writes the one-line run summary: a success mark, the version
// in bold and the destination faint.
func FprintSummary(w io.Writer, version, manifest, dest string) {
	fmt.Fprintln(w, Success("✓"), Bold(version), "from", manifest, "written to", Faint(dest))
}
