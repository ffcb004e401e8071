// Package version exposes build metadata injected via -ldflags.
package version

import "fmt"

// Set at build time with
// -ldflags "-X github.com/rshade/userlist/pkg/version.version=v1.2.3".
var (
	version   = "dev"     //nolint:gochecknoglobals // Set by the linker
	gitCommit = "unknown" //nolint:gochecknoglobals // Set by the linker
	buildDate = "unknown" //nolint:gochecknoglobals // Set by the linker
)

// GetVersion returns the semantic version of the binary.
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

// String renders all build metadata on one line.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, gitCommit, buildDate)
}
