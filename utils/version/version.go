package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Version and GitCommit are overridden at build time through -ldflags.
var (
	Version   = "v0.0.0"
	GitCommit = "HEAD"
)

// Get returns the printable version, marking builds without a release tag.
func Get() string {
	if semver.IsValid(Version) && semver.Prerelease(Version) == "" && Version != "v0.0.0" {
		return Version
	}

	return Version + "-dev+" + GitCommit
}

// Semantic returns the version without the leading "v",
// or "0.0.0" if the version is not a valid semantic version.
func Semantic() string {
	if !semver.IsValid(Version) {
		return "0.0.0"
	}

	return strings.TrimPrefix(semver.Canonical(Version), "v")
}
