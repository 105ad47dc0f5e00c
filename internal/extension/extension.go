// Package extension describes the browser extension that supplies bookmark
// trees: the messages it exchanges with the dashboard and the versions the
// server accepts.
package extension

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Message actions exchanged between the dashboard page and the extension.
const (
	ActionGetBookmarks  = "getBookmarks"
	ActionBookmarksData = "bookmarksData"
	ActionProbe         = "isMawhaExtensionInstalled"
	ActionDetected      = "mawhaExtensionDetected"
)

// Compatibility is the result of checking an extension version.
type Compatibility struct {
	Version    string `json:"version"`
	MinVersion string `json:"min_version"`
	Compatible bool   `json:"compatible"`
}

// CompareVersions compares two version strings semantically.
// Returns:
// - -1 if v1 < v2
// - 0 if v1 == v2
// - 1 if v1 > v2
// - error if either version string is invalid
func CompareVersions(v1, v2 string) (int, error) {
	// Strip leading 'v' if present (common in version strings)
	v1 = strings.TrimPrefix(v1, "v")
	v2 = strings.TrimPrefix(v2, "v")

	version1, err := semver.NewVersion(v1)
	if err != nil {
		return 0, fmt.Errorf("invalid version %s: %w", v1, err)
	}

	version2, err := semver.NewVersion(v2)
	if err != nil {
		return 0, fmt.Errorf("invalid version %s: %w", v2, err)
	}

	return version1.Compare(version2), nil
}

// CheckCompatibility reports whether an extension at version may talk to
// a server that requires minVersion.
func CheckCompatibility(version, minVersion string) (Compatibility, error) {
	cmp, err := CompareVersions(version, minVersion)
	if err != nil {
		return Compatibility{}, err
	}
	return Compatibility{
		Version:    strings.TrimPrefix(version, "v"),
		MinVersion: strings.TrimPrefix(minVersion, "v"),
		Compatible: cmp >= 0,
	}, nil
}

// IsValidVersion checks if a version string is valid semantic version.
func IsValidVersion(version string) bool {
	_, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	return err == nil
}
