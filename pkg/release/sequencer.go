// Package release implements the release version sequencer: validating the
// existing tag history and deriving the next permissible version.
package release

import (
	"fmt"

	"github.com/ruru-project/ruru/pkg/version"
)

// ValidateHistory checks a tag history, newest first, for well-formedness:
// no duplicates, every tag parseable, each step strictly decreasing going
// backward, and each step sequential. A non-sequential step is soft: the
// Interaction may confirm it, otherwise it is an error.
func ValidateHistory(tags []string, ia Interaction) error {
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if seen[tag] {
			return fmt.Errorf("%w: %s", ErrDuplicateTag, tag)
		}
		seen[tag] = true
	}

	parsed := make([]version.Tag, len(tags))
	for i, tag := range tags {
		t, err := version.Parse(tag)
		if err != nil {
			return err
		}
		parsed[i] = t
	}

	for i := 0; i+1 < len(parsed); i++ {
		newer, older := parsed[i], parsed[i+1]
		switch version.Compare(older, newer) {
		case 1:
			return fmt.Errorf("%w: %s is newer than the more recent %s", ErrOrdering, older, newer)
		case 0:
			// Distinct strings can still name the same version (v1.2.3 vs
			// v01.2.3); the exact-string duplicate check cannot see that.
			return fmt.Errorf("%w: %s and %s are the same version", ErrOrdering, tags[i], tags[i+1])
		}
		if !version.IsNext(older, newer) {
			if !ia.ConfirmGap(older, newer) {
				return fmt.Errorf("%w: %s does not follow %s", ErrSequencing, newer, older)
			}
		}
	}

	return nil
}

// NextVersion derives the next release tag. With no prior release the sole
// candidate is v0.1.0, subject to confirmation. Otherwise the Interaction
// chooses between the three structured bumps and a custom tag; a custom tag
// must parse, be strictly greater than the latest, and sequential unless
// confirmed.
func NextVersion(latest *version.Tag, ia Interaction) (version.Tag, error) {
	if latest == nil {
		if !ia.ConfirmInitial(version.Initial) {
			return version.Tag{}, fmt.Errorf("%w: first release declined", ErrAborted)
		}
		return version.Initial, nil
	}

	kind, err := ia.ChooseBump(*latest, latest.Candidates())
	if err != nil {
		return version.Tag{}, err
	}
	if kind != version.BumpCustom {
		return latest.Bump(kind), nil
	}

	raw, err := ia.CustomTag()
	if err != nil {
		return version.Tag{}, err
	}
	custom, err := version.Parse(raw)
	if err != nil {
		return version.Tag{}, err
	}

	if version.Compare(*latest, custom) >= 0 {
		return version.Tag{}, fmt.Errorf("%w: custom tag %s is not greater than the latest release %s",
			ErrOrdering, custom, *latest)
	}
	if !version.IsNext(*latest, custom) {
		if !ia.ConfirmGap(*latest, custom) {
			return version.Tag{}, fmt.Errorf("%w: %s does not follow %s", ErrSequencing, custom, *latest)
		}
	}

	return custom, nil
}

// Latest parses the newest tag of a history. It returns nil for an empty
// history.
func Latest(tags []string) (*version.Tag, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	t, err := version.Parse(tags[0])
	if err != nil {
		return nil, err
	}
	return &t, nil
}
