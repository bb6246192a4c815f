// Package printer renders styled console text for diagnostics.
package printer
