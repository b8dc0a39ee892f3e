package vcs

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// GitClient runs git commands against a local working copy.
type GitClient struct {
	// Dir is the working directory git runs in. Empty means the process's
	// working directory.
	Dir string
}

// NewGitClient returns a GitClient for the given working directory.
func NewGitClient(dir string) *GitClient {
	return &GitClient{Dir: dir}
}

func (g *GitClient) run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = g.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logrus.Debugf("running git %s", strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", args[0], msg)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Tags returns all tags, newest first by creation time.
func (g *GitClient) Tags() ([]string, error) {
	out, err := g.run("tag", "--list", "--sort=-creatordate")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// logFormat keeps the field separator out of anything git interpolates.
const logFieldSep = "\x1f"

// Log returns the commits since the given tag, newest first.
func (g *GitClient) Log(sinceTag string) ([]Commit, error) {
	args := []string{"log", "--pretty=format:%H" + logFieldSep + "%s" + logFieldSep + "%an" + logFieldSep + "%aI"}
	if sinceTag != "" {
		args = append(args, sinceTag+"..HEAD")
	}

	out, err := g.run(args...)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}

	var commits []Commit
	for _, line := range strings.Split(out, "\n") {
		fields := strings.SplitN(line, logFieldSep, 4)
		if len(fields) != 4 {
			continue
		}
		date, _ := time.Parse(time.RFC3339, fields[3])
		commits = append(commits, Commit{
			SHA:     fields[0],
			Subject: fields[1],
			Author:  fields[2],
			Date:    date,
		})
	}
	return commits, nil
}

// CreateBranch creates and checks out a branch at HEAD.
func (g *GitClient) CreateBranch(name string) error {
	_, err := g.run("checkout", "-b", name)
	return err
}

// CreateTag creates an annotated tag at HEAD.
func (g *GitClient) CreateTag(name, message string) error {
	_, err := g.run("tag", "-a", name, "-m", message)
	return err
}

// Push pushes the given refs to the remote.
func (g *GitClient) Push(remote string, refs ...string) error {
	if len(refs) == 0 {
		return nil
	}
	args := append([]string{"push", remote}, refs...)
	_, err := g.run(args...)
	return err
}
