// Package version exposes build metadata set at link time.
package version

import "fmt"

// Set via -ldflags "-X github.com/rshade/aichronos/pkg/version.version=...".
//
//nolint:gochecknoglobals // Link-time build metadata.
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the release version.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// String returns the multi-field version line printed by --version.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, gitCommit, buildDate)
}
