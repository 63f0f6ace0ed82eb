package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/mod/semver"
)

// Version is a strict semantic version (MAJOR.MINOR.PATCH[-PRE][+BUILD]).
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
	Pre   string
	Build string
}

// ParseVersion parses a semantic version without the "v" prefix.
// Shorthands such as "1" or "1.2" are rejected.
func ParseVersion(s string) (Version, error) {
	if !semver.IsValid("v" + s) {
		return Version{}, zerr.With(ErrInvalidVersion, "version", s)
	}

	core, build, _ := strings.Cut(s, "+")
	core, pre, _ := strings.Cut(core, "-")

	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return Version{}, zerr.With(ErrInvalidVersion, "version", s)
	}

	nums := make([]uint64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return Version{}, zerr.With(zerr.Wrap(err, ErrInvalidVersion.Error()), "version", s)
		}
		nums = append(nums, n)
	}

	return Version{
		Major: nums[0],
		Minor: nums[1],
		Patch: nums[2],
		Pre:   pre,
		Build: build,
	}, nil
}

// String returns the version in its canonical text form.
func (v Version) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(v.Major, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.Minor, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.Patch, 10))
	if v.Pre != "" {
		b.WriteByte('-')
		b.WriteString(v.Pre)
	}
	if v.Build != "" {
		b.WriteByte('+')
		b.WriteString(v.Build)
	}
	return b.String()
}

// Compat returns the semver-compatible bucket of the version.
// Versions >= 1.0.0 bucket by major; pre-1.0 versions bucket by "0.minor".
func (v Version) Compat() string {
	if v.Major == 0 {
		return "0." + strconv.FormatUint(v.Minor, 10)
	}
	return strconv.FormatUint(v.Major, 10)
}
