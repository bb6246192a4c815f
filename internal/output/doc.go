// Package output records key/value results for the calling CI system, either
// by appending "key=value" lines to the file named by an environment variable
// (GITHUB_OUTPUT by default) or by printing them to standard output.
package output
