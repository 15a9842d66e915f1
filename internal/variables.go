package internal

import (
	"fmt"
	"runtime"
	"strings"
)

// Program name, used for the CLI, the logger group, and config discovery.
const Name = "opensslpack"

const (

	// Printed in place of build metadata that was not injected at link time.
	unknownValue = "(unknown)"

	// Printed instead of a version string for builds made outside CI.
	devBuild = "(dev)"
)

var (
	version   = "" // Release version, e.g. "0.4.1". Set via -ldflags -X.
	gitCommit = "" // Commit the binary was built from. Set via -ldflags -X.

	rawQuiet   = "false" // Default for --quiet. Set via -ldflags -X.
	rawDebug   = "false" // Default for --debug. Set via -ldflags -X.
	rawVerbose = "false" // Default for --verbose. Set via -ldflags -X.
)

// Returns the release version without a leading "v".
func Version() string {
	v := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(version)), "v")
	if v == "" {
		return unknownValue
	}
	return v
}

// Returns the commit hash the binary was built from.
func GitCommit() string {
	if c := strings.TrimSpace(gitCommit); c != "" {
		return c
	}
	return unknownValue
}

// Reports whether version metadata is missing, which is the case for any
// binary built with a plain "go build".
func IsDev() bool {
	return strings.TrimSpace(version) == "" || strings.TrimSpace(gitCommit) == ""
}

// Returns "<version> <commit> [<os>/<arch>]", or "(dev)" for builds without
// injected metadata.
func VersionString() string {
	if IsDev() {
		return devBuild
	}
	return fmt.Sprintf("%s %s [%s/%s]", Version(), GitCommit(), runtime.GOOS, runtime.GOARCH)
}
