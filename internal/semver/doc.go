// Package semver parses and formats SemVer 2.0.0 version strings.
package semver
