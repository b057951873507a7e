// Package version provides build-time version information for Sunsetology.
// Values are injected at build time using ldflags, e.g.
//
//	-ldflags "-X github.com/jmylchreest/sunsetology/internal/version.Version=x.y.z"
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version of the application.
	Version = "dev"

	// Commit is the git commit hash of the build.
	Commit = "unknown"

	// Date is the build date in RFC3339 format.
	Date = "unknown"
)

// Info holds all version information for the application.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns all version information as a structured type.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// shortCommit abbreviates a commit hash to eight characters.
func shortCommit(c string) string {
	if len(c) > 8 {
		return c[:8]
	}
	return c
}

// String returns a human-readable version string.
func String() string {
	info := GetInfo()
	if info.Commit != "unknown" && info.Date != "unknown" {
		return fmt.Sprintf("sunsetology version %s (commit: %s, built: %s, %s, %s)",
			info.Version, shortCommit(info.Commit), info.Date, info.GoVersion, info.Platform)
	}
	return fmt.Sprintf("sunsetology version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
}

// Short returns a short version string suitable for CLI output.
func Short() string {
	return Version
}
