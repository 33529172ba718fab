// SPDX-License-Identifier: MPL-2.0

package java

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseErrorKind classifies why a version string could not be parsed.
type ParseErrorKind int

const (
	// ParseErrEmpty indicates the input was empty or whitespace-only.
	ParseErrEmpty ParseErrorKind = iota
	// ParseErrNoNumericComponent indicates no numeric token could be
	// extracted from the input.
	ParseErrNoNumericComponent
)

// ParseError is returned by ParseVersion for unusable input.
type ParseError struct {
	// Raw is the original input string.
	Raw string
	// Kind classifies the failure.
	Kind ParseErrorKind
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Kind {
	case ParseErrEmpty:
		return "version string is empty"
	case ParseErrNoNumericComponent:
		return fmt.Sprintf("no numeric component in version string %q", e.Raw)
	default:
		return fmt.Sprintf("unparseable version string %q", e.Raw)
	}
}

// Version is a parsed Java version. Missing components are zero for
// comparison purposes; Raw preserves the original string verbatim for
// display. Values are immutable once parsed.
type Version struct {
	// Major is the first numeric component.
	Major int
	// Minor is the second numeric component, or 0 when absent.
	Minor int
	// Patch is the third numeric component, or 0 when absent.
	Patch int
	// Update is the update/build number: a fourth dotted component,
	// an underscore-separated update (1.8.0_345), or a plus-separated
	// build (21+35).
	Update int
	// Suffix is the trailing pre-release or vendor tag, without its
	// leading separator (17.0.2-ea has Suffix "ea").
	Suffix string
	// Raw is the input as given to ParseVersion.
	Raw string
}

// ParseVersion parses a raw version string into a Version. It accepts
// dot-separated numeric sequences ("17.0.2"), underscore update forms
// ("1.8.0_345"), build-tagged forms ("21+35") and partial inputs ("17").
// Leading non-numeric tokens ("jdk-", "openjdk ") are stripped before
// numeric parsing. The function is total: same input, same result, no I/O.
func ParseVersion(raw string) (Version, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Version{}, &ParseError{Raw: raw, Kind: ParseErrEmpty}
	}

	start := strings.IndexFunc(trimmed, isASCIIDigit)
	if start < 0 {
		return Version{}, &ParseError{Raw: raw, Kind: ParseErrNoNumericComponent}
	}

	v := Version{Raw: raw}
	rest := trimmed[start:]

	var numeric []int
	for len(rest) > 0 && len(numeric) < 4 {
		end := 0
		for end < len(rest) && isASCIIDigit(rune(rest[end])) {
			end++
		}
		if end == 0 {
			break
		}
		n, err := strconv.Atoi(rest[:end])
		if err != nil {
			// Component overflows int; clamp rather than fail.
			n = int(^uint(0) >> 1)
		}
		numeric = append(numeric, n)
		rest = rest[end:]

		// A dot continues the dotted sequence; underscore and plus both
		// introduce the update/build number as the final component.
		if len(rest) > 0 && (rest[0] == '.' || rest[0] == '_' || rest[0] == '+') {
			if (rest[0] == '_' || rest[0] == '+') && len(numeric) < 4 {
				// Jump straight to the update slot.
				for len(numeric) < 3 {
					numeric = append(numeric, 0)
				}
			}
			if len(rest) > 1 && isASCIIDigit(rune(rest[1])) {
				rest = rest[1:]
				continue
			}
		}
		break
	}

	switch {
	case len(numeric) > 3:
		v.Update = numeric[3]
		fallthrough
	case len(numeric) == 3:
		v.Patch = numeric[2]
		fallthrough
	case len(numeric) == 2:
		v.Minor = numeric[1]
		fallthrough
	default:
		v.Major = numeric[0]
	}

	v.Suffix = strings.TrimLeft(rest, "-._+")
	return v, nil
}

// MustParseVersion is ParseVersion that panics on error, for tests and
// constants known to be valid.
func MustParseVersion(raw string) Version {
	v, err := ParseVersion(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the original version string when available, falling back
// to a dotted rendering of the numeric components.
func (v Version) String() string {
	if v.Raw != "" {
		return v.Raw
	}
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Update != 0 {
		s += fmt.Sprintf("+%d", v.Update)
	}
	if v.Suffix != "" {
		s += "-" + v.Suffix
	}
	return s
}

// Compare orders two versions: numeric components lexicographically
// (major, minor, patch, update), with the suffix consulted only when all
// numeric components are equal. It returns -1, 0 or 1.
func (v Version) Compare(other Version) int {
	pairs := [4][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Patch, other.Patch},
		{v.Update, other.Update},
	}
	for _, p := range pairs {
		if p[0] != p[1] {
			if p[0] < p[1] {
				return -1
			}
			return 1
		}
	}
	return strings.Compare(v.Suffix, other.Suffix)
}

// MajorFeature returns the feature release number, mapping the legacy
// "1.x" scheme onto the modern one: 1.8.0_345 yields 8, 17.0.2 yields 17.
func (v Version) MajorFeature() int {
	if v.Major == 1 && v.Minor > 0 {
		return v.Minor
	}
	return v.Major
}

// AtLeast reports whether the feature release is at least major.
func (v Version) AtLeast(major int) bool {
	return v.MajorFeature() >= major
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
