// Package tag decodes environment tags into versions, discovers tag prefix
// conventions, resolves the latest tag per environment and plans bumps.
package tag

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/blang/semver/v4"
)

var versionRE = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// Decode returns the version of name if it is exactly prefix followed by
// major.minor.patch. Leading zeros are accepted and parse as integers.
func Decode(name, prefix string) (semver.Version, bool) {
	if !strings.HasPrefix(name, prefix) {
		return semver.Version{}, false
	}
	m := versionRE.FindStringSubmatch(name[len(prefix):])
	if m == nil {
		return semver.Version{}, false
	}

	var parts [3]uint64
	for i := range parts {
		n, err := strconv.ParseUint(m[i+1], 10, 64)
		if err != nil {
			return semver.Version{}, false
		}
		parts[i] = n
	}
	return semver.Version{Major: parts[0], Minor: parts[1], Patch: parts[2]}, true
}

// Compare returns -1, 0 or 1 comparing major, minor then patch.
func Compare(a, b semver.Version) int {
	return a.Compare(b)
}

// NextPatch returns v with its patch incremented. Major and minor are never
// bumped.
func NextPatch(v semver.Version) semver.Version {
	next := semver.Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch}
	next.Patch++
	return next
}

// Format renders v as major.minor.patch, without a prefix.
func Format(v semver.Version) string {
	return strconv.FormatUint(v.Major, 10) + "." +
		strconv.FormatUint(v.Minor, 10) + "." +
		strconv.FormatUint(v.Patch, 10)
}

// Name returns the tag name for v under prefix.
func Name(prefix string, v semver.Version) string {
	return prefix + Format(v)
}

// Glob returns the pattern passed to the vcs to list prefix's tags. It may
// match more than Decode accepts.
func Glob(prefix string) string {
	return prefix + "[0-9]*.[0-9]*.[0-9]*"
}
