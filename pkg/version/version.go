// Package version exposes build metadata for the blitz binary.
package version

import "fmt"

// Build-time variables injected via -ldflags:
//
//	go build -ldflags "-X github.com/earlbalai/rn-blitz/pkg/version.Version=v1.2.0"
var (
	Version = "v1.0.0"
	Commit  = "none"
	Date    = "unknown"
)

// ProductName is the human readable tool name used in banners.
const ProductName = "React Native Blitz"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetCommit returns the build commit hash.
func GetCommit() string {
	return Commit
}

// GetDate returns the build date.
func GetDate() string {
	return Date
}

// GetFullVersion returns a formatted full version string.
func GetFullVersion() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s)", ProductName, Version, Commit, Date)
}
