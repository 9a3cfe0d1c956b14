package entity

import (
	"errors"
	"fmt"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// ErrMalformedVersion is returned when a version string is not a dotted list
// of non-negative integers.
var ErrMalformedVersion = errors.New("malformed version")

// Comparison is the result of comparing two versions.
type Comparison int

const (
	Less Comparison = iota - 1
	Equal
	Greater
)

// String returns a human-readable representation of the comparison.
func (c Comparison) String() string {
	switch c {
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "equal"
	}
}

// Version is an ordered tuple of non-negative integer components,
// e.g. major.minor.build.patch.
type Version struct {
	v *goversion.Version
}

// ParseVersion parses a dotted numeric version such as "12.0.742.91".
// A leading "v" and surrounding whitespace are tolerated; prerelease and
// build metadata suffixes are not.
func ParseVersion(s string) (Version, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "v")
	if raw == "" {
		return Version{}, fmt.Errorf("%w: empty string", ErrMalformedVersion)
	}

	v, err := goversion.NewVersion(raw)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q: %w", ErrMalformedVersion, s, err)
	}
	if v.Prerelease() != "" || v.Metadata() != "" {
		return Version{}, fmt.Errorf("%w: %q has a non-numeric suffix", ErrMalformedVersion, s)
	}

	return Version{v: v}, nil
}

// MustParseVersion is like ParseVersion but panics on malformed input.
// Intended for tests and constants.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// IsZero reports whether the version was never parsed.
func (v Version) IsZero() bool {
	return v.v == nil
}

// String returns the canonical dotted form of the version.
func (v Version) String() string {
	if v.v == nil {
		return "unknown"
	}
	return v.v.String()
}

// Compare compares a and b component by component. Missing trailing
// components compare as zero, so "1.2" equals "1.2.0.0".
// The zero Version sorts before every parsed version.
func Compare(a, b Version) Comparison {
	switch {
	case a.v == nil && b.v == nil:
		return Equal
	case a.v == nil:
		return Less
	case b.v == nil:
		return Greater
	}
	return Comparison(a.v.Compare(b.v))
}

// UpgradeAvailable reports whether installed should be treated as an upgrade
// over running. An unknown installed version (nil) counts as an upgrade:
// failing to read the installed version correlates with the install having
// moved to a state the running process cannot match.
func UpgradeAvailable(installed *Version, running Version) bool {
	if installed == nil || installed.IsZero() {
		return true
	}
	return Compare(*installed, running) == Greater
}
