// Package changelog renders release sections from the commit log and keeps
// CHANGELOG.md current.
package changelog

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ruru-project/ruru/pkg/vcs"
	"github.com/ruru-project/ruru/pkg/version"
)

const header = "# Changelog\n"

// Section renders the changelog block for a release: a dated heading
// followed by one bullet per commit subject, newest first.
func Section(ver version.Tag, commits []vcs.Commit, date time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s - %s\n\n", ver, date.Format("2006-01-02"))
	for _, c := range commits {
		fmt.Fprintf(&b, "- %s\n", c.Subject)
	}
	return b.String()
}

// Prepend inserts a section at the top of the changelog file, below the
// title line when one exists. The file is created when absent.
func Prepend(path, section string) error {
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var out strings.Builder
	body := string(existing)

	if strings.HasPrefix(body, "# ") {
		// Keep the existing title line on top.
		title, rest, _ := strings.Cut(body, "\n")
		out.WriteString(title + "\n\n")
		out.WriteString(section)
		rest = strings.TrimLeft(rest, "\n")
		if rest != "" {
			out.WriteString("\n" + rest)
		}
	} else {
		out.WriteString(header + "\n")
		out.WriteString(section)
		if body != "" {
			out.WriteString("\n" + strings.TrimLeft(body, "\n"))
		}
	}

	if err := os.WriteFile(path, []byte(out.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
