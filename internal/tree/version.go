package tree

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CurrentVersion is the document version written by Encode.
const CurrentVersion = "1.0.0"

// SupportedVersions is the semver constraint a document version must satisfy.
const SupportedVersions = "^1.0.0"

var supported = mustConstraint(SupportedVersions)

// CheckVersion reports whether a document version can be read by this build.
// A leading "v" is tolerated.
func CheckVersion(version string) error {
	v, err := parseSemver(version)
	if err != nil {
		return fmt.Errorf("parsing document version %q: %w", version, err)
	}
	if !supported.Check(v) {
		return fmt.Errorf("document version %s is not supported (want %s)", v, SupportedVersions)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}

func mustConstraint(c string) *semver.Constraints {
	cs, err := semver.NewConstraint(c)
	if err != nil {
		panic(fmt.Sprintf("invalid version constraint %q: %v", c, err))
	}
	return cs
}
