// Package version implements release tag parsing, ordering, and bumping
// for tags of the form vMAJOR.MINOR.MICRO.
package version

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrFormat reports a tag string that does not match vMAJOR.MINOR.MICRO.
var ErrFormat = errors.New("invalid tag format")

// Tag is an immutable release version triple.
type Tag struct {
	Major int
	Minor int
	Micro int
}

// Initial is the version offered when no release exists yet.
var Initial = Tag{Major: 0, Minor: 1, Micro: 0}

var tagPattern = regexp.MustCompile(`^v(\d+)\.(\d+)\.(\d+)$`)

// Parse parses a tag string of the exact form vMAJOR.MINOR.MICRO.
// Anything else (missing v, signs, extra components, suffixes) is ErrFormat.
func Parse(s string) (Tag, error) {
	m := tagPattern.FindStringSubmatch(s)
	if m == nil {
		return Tag{}, fmt.Errorf("%w: %q (expected vMAJOR.MINOR.MICRO)", ErrFormat, s)
	}

	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Tag{}, fmt.Errorf("%w: major component of %q: %v", ErrFormat, s, err)
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return Tag{}, fmt.Errorf("%w: minor component of %q: %v", ErrFormat, s, err)
	}
	micro, err := strconv.Atoi(m[3])
	if err != nil {
		return Tag{}, fmt.Errorf("%w: micro component of %q: %v", ErrFormat, s, err)
	}

	return Tag{Major: major, Minor: minor, Micro: micro}, nil
}

// String renders the canonical tag form.
func (t Tag) String() string {
	return fmt.Sprintf("v%d.%d.%d", t.Major, t.Minor, t.Micro)
}

func (t Tag) components() [3]int {
	return [3]int{t.Major, t.Minor, t.Micro}
}

// Compare returns -1, 0, or 1 comparing a against b lexicographically over
// (major, minor, micro).
func Compare(a, b Tag) int {
	ac, bc := a.components(), b.components()
	for i := range ac {
		switch {
		case ac[i] < bc[i]:
			return -1
		case ac[i] > bc[i]:
			return 1
		}
	}
	return 0
}

// LessOrEqual reports whether a precedes b or equals it.
func LessOrEqual(a, b Tag) bool {
	return Compare(a, b) <= 0
}

// IsNext reports whether b is the immediate successor of a: exactly one
// component increments by one and every component to its right resets to
// zero. A tag is never its own successor.
func IsNext(a, b Tag) bool {
	ac, bc := a.components(), b.components()
	for i := range ac {
		if bc[i] == ac[i] {
			continue
		}
		if bc[i] != ac[i]+1 {
			return false
		}
		for j := i + 1; j < len(bc); j++ {
			if bc[j] != 0 {
				return false
			}
		}
		return true
	}
	return false
}

// Bump identifies how the next version is derived from the latest one.
type Bump int

const (
	BumpMajor Bump = iota
	BumpMinor
	BumpMicro
	BumpCustom
)

func (b Bump) String() string {
	switch b {
	case BumpMajor:
		return "major"
	case BumpMinor:
		return "minor"
	case BumpMicro:
		return "micro"
	case BumpCustom:
		return "custom"
	default:
		return fmt.Sprintf("Bump(%d)", int(b))
	}
}

// ParseBump maps a bump name to its kind. Custom is deliberately excluded:
// it is only reachable through the interactive menu.
func ParseBump(s string) (Bump, error) {
	switch s {
	case "major":
		return BumpMajor, nil
	case "minor":
		return BumpMinor, nil
	case "micro":
		return BumpMicro, nil
	default:
		return 0, fmt.Errorf("unknown bump kind %q (expected major, minor, or micro)", s)
	}
}

// Bump returns the tag derived from t by the given kind. BumpCustom has no
// derivable result and panics; callers route custom input through the
// selector instead.
func (t Tag) Bump(kind Bump) Tag {
	switch kind {
	case BumpMajor:
		return Tag{Major: t.Major + 1}
	case BumpMinor:
		return Tag{Major: t.Major, Minor: t.Minor + 1}
	case BumpMicro:
		return Tag{Major: t.Major, Minor: t.Minor, Micro: t.Micro + 1}
	default:
		panic("version: Bump called with non-derivable kind " + kind.String())
	}
}

// Candidates returns the three structured successors of t in menu order:
// major, minor, micro.
func (t Tag) Candidates() [3]Tag {
	return [3]Tag{t.Bump(BumpMajor), t.Bump(BumpMinor), t.Bump(BumpMicro)}
}
