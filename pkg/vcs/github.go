package vcs

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v60/github"
	"github.com/sirupsen/logrus"
)

// GitHubClient talks to a repository's GitHub remote: listing published tags
// and turning a pushed tag into a release.
type GitHubClient struct {
	client *github.Client
	owner  string
	repo   string
	ctx    context.Context
}

// NewGitHubClient returns a client for the given owner/repo. An empty token
// uses unauthenticated access (read-only operations only).
func NewGitHubClient(owner, repo, token string) *GitHubClient {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return &GitHubClient{
		client: client,
		owner:  owner,
		repo:   repo,
		ctx:    context.Background(),
	}
}

// Tags returns the repository's tags, newest first.
func (g *GitHubClient) Tags() ([]string, error) {
	var all []string
	opts := &github.ListOptions{PerPage: 100}

	for {
		tags, resp, err := g.client.Repositories.ListTags(g.ctx, g.owner, g.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("list tags for %s/%s: %w", g.owner, g.repo, err)
		}
		for _, t := range tags {
			all = append(all, t.GetName())
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return all, nil
}

// CreateRelease publishes a GitHub release for an already-pushed tag.
func (g *GitHubClient) CreateRelease(tag, name, body string) error {
	release := &github.RepositoryRelease{
		TagName: github.String(tag),
		Name:    github.String(name),
		Body:    github.String(body),
	}
	created, _, err := g.client.Repositories.CreateRelease(g.ctx, g.owner, g.repo, release)
	if err != nil {
		return fmt.Errorf("create release %s for %s/%s: %w", tag, g.owner, g.repo, err)
	}
	logrus.Debugf("created release %s (%s)", created.GetTagName(), created.GetHTMLURL())
	return nil
}

// ParseRepo extracts owner and repo from an "owner/repo" slug or a
// github.com URL, with or without a scheme or .git suffix.
func ParseRepo(s string) (owner, repo string, err error) {
	path := strings.TrimSuffix(strings.TrimSuffix(s, "/"), ".git")
	if i := strings.Index(path, "github.com/"); i >= 0 {
		path = path[i+len("github.com/"):]
	}

	owner, rest, ok := strings.Cut(path, "/")
	if ok {
		repo, _, _ = strings.Cut(rest, "/")
	}
	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("cannot parse GitHub repo from %q", s)
	}
	return owner, repo, nil
}
