// Package config resolves where relver reads the version from and where it
// writes its outputs. Values come from built-in defaults, an optional
// .relver.yaml file, RELVER_* environment variables and, last, CLI flags.
package config
