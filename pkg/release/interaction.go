package release

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ruru-project/ruru/pkg/cli"
	"github.com/ruru-project/ruru/pkg/version"
)

// Interaction answers the decision points of a release run. Splitting it
// from the sequencing logic keeps the validator and selector pure and
// testable without a terminal.
type Interaction interface {
	// ConfirmInitial asks whether to cut the very first release.
	ConfirmInitial(candidate version.Tag) bool

	// ConfirmGap asks whether a non-sequential step from older to newer is
	// acceptable.
	ConfirmGap(older, newer version.Tag) bool

	// ChooseBump picks how to derive the next version from the latest tag.
	ChooseBump(latest version.Tag, candidates [3]version.Tag) (version.Bump, error)

	// CustomTag reads a user-supplied tag string.
	CustomTag() (string, error)
}

// StdinIsTerminal reports whether the process is attached to a terminal and
// can prompt.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// TerminalInteraction prompts on a terminal.
type TerminalInteraction struct {
	in    *bufio.Reader
	out   io.Writer
	theme cli.Theme
}

// NewTerminalInteraction returns an Interaction prompting on out and reading
// answers from in.
func NewTerminalInteraction(in io.Reader, out io.Writer, theme cli.Theme) *TerminalInteraction {
	return &TerminalInteraction{
		in:    bufio.NewReader(in),
		out:   out,
		theme: theme,
	}
}

func (t *TerminalInteraction) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (t *TerminalInteraction) confirm(prompt string) bool {
	fmt.Fprintf(t.out, "%s [y/N] ", prompt)
	answer, err := t.readLine()
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func (t *TerminalInteraction) ConfirmInitial(candidate version.Tag) bool {
	return t.confirm(fmt.Sprintf("No releases exist yet. Create the first release %s?", candidate))
}

func (t *TerminalInteraction) ConfirmGap(older, newer version.Tag) bool {
	return t.confirm(fmt.Sprintf("%s does not follow %s sequentially. Continue anyway?", newer, older))
}

func (t *TerminalInteraction) ChooseBump(latest version.Tag, candidates [3]version.Tag) (version.Bump, error) {
	fmt.Fprintf(t.out, "Latest release is %s. Choose the next version:\n", cli.Bold(latest.String()))
	fmt.Fprintln(t.out, cli.NumberedList([]string{
		fmt.Sprintf("major  %s", candidates[0]),
		fmt.Sprintf("minor  %s", candidates[1]),
		fmt.Sprintf("micro  %s", candidates[2]),
		"custom",
	}, 2))
	fmt.Fprint(t.out, "Selection (1-4): ")

	answer, err := t.readLine()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSelection, err)
	}

	switch answer {
	case "1":
		return version.BumpMajor, nil
	case "2":
		return version.BumpMinor, nil
	case "3":
		return version.BumpMicro, nil
	case "4":
		return version.BumpCustom, nil
	default:
		return 0, fmt.Errorf("%w: %q is not a choice between 1 and 4", ErrSelection, answer)
	}
}

func (t *TerminalInteraction) CustomTag() (string, error) {
	fmt.Fprint(t.out, "Custom version tag (vMAJOR.MINOR.MICRO): ")
	return t.readLine()
}

// AutoInteraction answers every decision point with the unattended default:
// the first release is confirmed, sequencing gaps are declined, and the bump
// kind is micro unless forced.
type AutoInteraction struct {
	// Bump overrides the default micro bump when ForceBump is set.
	Bump      version.Bump
	ForceBump bool
}

func (a AutoInteraction) ConfirmInitial(version.Tag) bool { return true }

func (a AutoInteraction) ConfirmGap(version.Tag, version.Tag) bool { return false }

func (a AutoInteraction) ChooseBump(version.Tag, [3]version.Tag) (version.Bump, error) {
	if a.ForceBump {
		return a.Bump, nil
	}
	return version.BumpMicro, nil
}

func (a AutoInteraction) CustomTag() (string, error) {
	return "", fmt.Errorf("%w: custom tags require an attached terminal", ErrSelection)
}
