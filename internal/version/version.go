// Package version exposes build-time metadata stamped into the binary via ldflags:
//
//	go build -ldflags "-X github.com/indaco/relver/internal/version.Version=1.0.0"
package version

var (
	// Version is the semantic version of this build.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "unknown"
	// BuildDate is the UTC timestamp when the binary was built.
	BuildDate = "unknown"
)

// GetVersion returns the version string.
func GetVersion() string {
	return Version
}

// Summary returns a human-readable description of the build metadata.
func Summary() string {
	return Version + " (" + Commit + ", built " + BuildDate + ")"
}
