// Package cli wires configuration, manifest reading and output emission into
// the relver root command.
package cli
