package release

import (
	"fmt"
	"io"
	"time"

	"github.com/ruru-project/ruru/pkg/changelog"
	"github.com/ruru-project/ruru/pkg/cli"
	"github.com/ruru-project/ruru/pkg/vcs"
	"github.com/ruru-project/ruru/pkg/version"
)

// Publisher turns a pushed tag into a hosted release.
type Publisher interface {
	CreateRelease(tag, name, body string) error
}

// CutParams carries everything a release run needs. Out receives progress
// lines; Publisher may be nil when no hosting remote is configured.
type CutParams struct {
	Tags        []string
	Client      vcs.RepoClient
	Config      *Config
	Interaction Interaction
	Publisher   Publisher
	Out         io.Writer
	Theme       cli.Theme

	// Now stands in for time.Now in tests.
	Now func() time.Time
}

func (p CutParams) say(kind cli.AlertKind, format string, args ...any) {
	line, err := cli.Alert(p.Theme, kind, fmt.Sprintf(format, args...))
	if err != nil {
		line = fmt.Sprintf(format, args...)
	}
	fmt.Fprintln(p.Out, line)
}

// Cut runs the release workflow end to end: validate the history, derive the
// next version, write the marker file, create the release branch and tag,
// update the changelog, push, and publish. It stops at the first error;
// steps that already completed are not rolled back.
func Cut(p CutParams) (version.Tag, error) {
	if err := ValidateHistory(p.Tags, p.Interaction); err != nil {
		return version.Tag{}, err
	}
	p.say(cli.AlertSuccess, "tag history is well-formed (%d release(s))", len(p.Tags))

	latest, err := Latest(p.Tags)
	if err != nil {
		return version.Tag{}, err
	}

	next, err := NextVersion(latest, p.Interaction)
	if err != nil {
		return version.Tag{}, err
	}
	p.say(cli.AlertInfo, "next version: %s", next)

	if err := WriteMarker(p.Config.Marker, next); err != nil {
		return version.Tag{}, err
	}
	p.say(cli.AlertSuccess, "wrote %s", p.Config.Marker)

	var sinceTag string
	if latest != nil {
		sinceTag = p.Tags[0]
	}
	commits, err := p.Client.Log(sinceTag)
	if err != nil {
		return version.Tag{}, err
	}

	branch := p.Config.BranchPrefix + next.String()
	if err := p.Client.CreateBranch(branch); err != nil {
		return version.Tag{}, err
	}
	p.say(cli.AlertSuccess, "created branch %s", branch)

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	var section string
	if len(commits) == 0 {
		if sinceTag == "" {
			p.say(cli.AlertWarning, "no commits yet, skipping changelog")
		} else {
			p.say(cli.AlertWarning, "no commits since %s, skipping changelog", sinceTag)
		}
	} else {
		section = changelog.Section(next, commits, now())
		if err := changelog.Prepend(p.Config.Changelog, section); err != nil {
			return version.Tag{}, err
		}
		p.say(cli.AlertSuccess, "updated %s", p.Config.Changelog)
	}

	if err := p.Client.CreateTag(next.String(), "Release "+next.String()); err != nil {
		return version.Tag{}, err
	}
	p.say(cli.AlertSuccess, "created tag %s", next)

	if p.Config.Push {
		if err := p.Client.Push(p.Config.Remote, branch, next.String()); err != nil {
			return version.Tag{}, err
		}
		p.say(cli.AlertSuccess, "pushed %s and %s to %s", branch, next, p.Config.Remote)
	} else {
		p.say(cli.AlertWarning, "push disabled, %s stays local", next)
	}

	if p.Publisher != nil && p.Config.Push {
		if err := p.Publisher.CreateRelease(next.String(), next.String(), section); err != nil {
			return version.Tag{}, err
		}
		p.say(cli.AlertSuccess, "published release %s", next)
	}

	return next, nil
}
