// Package vcs provides access to the version-control repository a release is
// cut from: the local git working copy and, optionally, its GitHub remote.
package vcs

import "time"

// Commit is a single entry of the repository log.
type Commit struct {
	SHA     string
	Subject string
	Author  string
	Date    time.Time
}

// RepoClient reads and writes release-relevant repository state.
type RepoClient interface {
	// Tags returns all release tags, newest first by creation time.
	Tags() ([]string, error)

	// Log returns the commits reachable from HEAD but not from sinceTag,
	// newest first. An empty sinceTag returns the whole history.
	Log(sinceTag string) ([]Commit, error)

	// CreateBranch creates and checks out a new branch at HEAD.
	CreateBranch(name string) error

	// CreateTag creates an annotated tag at HEAD.
	CreateTag(name, message string) error

	// Push pushes the given refs (branch or tag names) to the remote.
	Push(remote string, refs ...string) error
}
