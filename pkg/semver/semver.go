// Package semver implements just enough of semantic versioning for the
// self-update check: parsing, ordering, and equality.
package semver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Version is a semantic version: major.minor.patch plus optional
// pre-release identifiers and build metadata.
type Version struct {
	Major int
	Minor int
	Patch int
	Pre   []string
	Build string
}

func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if len(v.Pre) > 0 {
		s += "-" + strings.Join(v.Pre, ".")
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}

// Compare returns -1, 0 or 1 depending on semver precedence of v relative
// to o. Build metadata is ignored, per semver precedence rules.
func Compare(v, o Version) int {
	if c := compareInt(v.Major, o.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, o.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, o.Patch); c != 0 {
		return c
	}
	return comparePre(v.Pre, o.Pre)
}

// GT reports whether v has higher precedence than o.
func (v Version) GT(o Version) bool { return Compare(v, o) > 0 }

// LT reports whether v has lower precedence than o.
func (v Version) LT(o Version) bool { return Compare(v, o) < 0 }

// Equals reports whether v and o have equal precedence (build metadata
// does not participate).
func (v Version) Equals(o Version) bool { return Compare(v, o) == 0 }

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func comparePre(a, b []string) int {
	// A release outranks any pre-release of the same core version.
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	if len(a) == 0 {
		return 1
	}
	if len(b) == 0 {
		return -1
	}
	for i := 0; i < len(a) && i < len(b); i++ {
		an, aNumErr := strconv.Atoi(a[i])
		bn, bNumErr := strconv.Atoi(b[i])
		switch {
		case aNumErr == nil && bNumErr == nil:
			if c := compareInt(an, bn); c != 0 {
				return c
			}
		case aNumErr == nil:
			// Numeric identifiers rank below alphanumeric ones.
			return -1
		case bNumErr == nil:
			return 1
		default:
			if a[i] != b[i] {
				if a[i] < b[i] {
					return -1
				}
				return 1
			}
		}
	}
	// Equal prefix; the longer pre-release list has higher precedence.
	return compareInt(len(a), len(b))
}

// Parse parses a semantic version string. A leading 'v' or 'V' is allowed.
func Parse(s string) (Version, error) {
	orig := s
	if strings.HasPrefix(s, "v") || strings.HasPrefix(s, "V") {
		s = s[1:]
	}
	var build string
	if idx := strings.Index(s, "+"); idx >= 0 {
		build = s[idx+1:]
		s = s[:idx]
	}
	var pre []string
	if idx := strings.Index(s, "-"); idx >= 0 {
		pre = strings.Split(s[idx+1:], ".")
		s = s[:idx]
	}
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid semver (need major.minor.patch): %s", orig)
	}
	maj, err := strconv.Atoi(parts[0])
	if err != nil {
		return Version{}, errors.New("invalid major version")
	}
	min, err := strconv.Atoi(parts[1])
	if err != nil {
		return Version{}, errors.New("invalid minor version")
	}
	patch, err := strconv.Atoi(parts[2])
	if err != nil {
		return Version{}, errors.New("invalid patch version")
	}
	return Version{Major: maj, Minor: min, Patch: patch, Pre: pre, Build: build}, nil
}
