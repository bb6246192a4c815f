// Package ci detects whether relver runs inside a CI/CD environment.
package ci

import (
	"os"

	"golang.org/x/term"
)

// Provider names a CI system.
type Provider string

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// providers maps well-known environment variables to their CI system.
// Order matters: specific providers come before the generic CI indicators.
var providers = []struct {
	env      string
	provider Provider
}{
	{"GITHUB_ACTIONS", "GitHub Actions"},
	{"GITLAB_CI", "GitLab CI"},
	{"CIRCLECI", "CircleCI"},
	{"TRAVIS", "Travis CI"},
	{"JENKINS_HOME", "Jenkins"},
	{"BUILDKITE", "Buildkite"},
	{"BITBUCKET_BUILD_NUMBER", "Bitbucket Pipelines"},
	{"DRONE", "Drone CI"},
	{"SEMAPHORE", "Semaphore CI"},
	{"APPVEYOR", "AppVeyor"},
	{"CODEBUILD_BUILD_ID", "AWS CodeBuild"},
	{"TF_BUILD", "Azure Pipelines"},
	{"CI", "CI"},
	{"CONTINUOUS_INTEGRATION", "CI"},
}

// Detect reports the CI provider named by the environment, if any.
func Detect(lookup LookupFunc) (Provider, bool) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for _, p := range providers {
		if v, ok := lookup(p.env); ok && v != "" && v != "false" {
			return p.provider, true
		}
	}
	return "", false
}

// IsTTY checks if the given file descriptor is a terminal.
func IsTTY(fd uintptr) bool {
	return term.IsTerminal(int(fd)) //nolint:gosec // G115: fd is a small value, no overflow risk
}
