// Package match provides argument verification with partial matching, after
// R's match.arg and pmatch.
package match

import (
	"fmt"
	"strings"
)

// PMatch results for non-index outcomes.
const (
	Ambiguous = -1
	NoMatch   = -2
)

// PMatch finds x in table, preferring an exact match and falling back to a
// unique prefix match. It returns the matched index, Ambiguous when several
// entries share the prefix, or NoMatch. An empty string matches nothing.
func PMatch(x string, table []string) int {
	if x == "" {
		return NoMatch
	}

	for i, entry := range table {
		if entry == x {
			return i
		}
	}

	found := NoMatch
	for i, entry := range table {
		if !strings.HasPrefix(entry, x) {
			continue
		}
		if found != NoMatch {
			return Ambiguous
		}
		found = i
	}
	return found
}

// MatchArg matches arg against choices, allowing unambiguous prefixes.
// Duplicate choices are collapsed before matching.
func MatchArg(arg string, choices []string) (string, error) {
	choices = dedupe(choices)

	switch idx := PMatch(arg, choices); idx {
	case NoMatch:
		return "", fmt.Errorf("the provided argument %q is not valid; available choices are: %s",
			arg, strings.Join(choices, ", "))
	case Ambiguous:
		return "", fmt.Errorf("the argument %q matches multiple choices: %s; be more specific",
			arg, strings.Join(prefixMatches(arg, choices), ", "))
	default:
		return choices[idx], nil
	}
}

// MatchArgs matches every element of args against choices. An ambiguous
// element expands to all its prefix matches; an element with no match fails
// the whole call.
func MatchArgs(args, choices []string) ([]string, error) {
	choices = dedupe(choices)

	var matched []string
	for i, arg := range args {
		switch idx := PMatch(arg, choices); idx {
		case NoMatch:
			return nil, fmt.Errorf("element %d (%q) is not valid; available choices are: %s",
				i, arg, strings.Join(choices, ", "))
		case Ambiguous:
			matched = append(matched, prefixMatches(arg, choices)...)
		default:
			matched = append(matched, choices[idx])
		}
	}
	return matched, nil
}

func dedupe(choices []string) []string {
	seen := make(map[string]bool, len(choices))
	out := make([]string, 0, len(choices))
	for _, c := range choices {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

func prefixMatches(arg string, choices []string) []string {
	var out []string
	for _, c := range choices {
		if strings.HasPrefix(c, arg) {
			out = append(out, c)
		}
	}
	return out
}
