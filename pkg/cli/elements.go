package cli

import (
	"fmt"
	"strings"
)

// AlertKind names a kind of alert line.
type AlertKind string

const (
	AlertInfo    AlertKind = "info"
	AlertSuccess AlertKind = "success"
	AlertWarning AlertKind = "warning"
	AlertError   AlertKind = "error"
)

// Heading renders a styled heading at the given level (1-6).
func Heading(theme Theme, text string, level int) (string, error) {
	if level < 1 || level > 6 {
		return "", fmt.Errorf("heading level must be between 1 and 6, got %d", level)
	}

	switch level {
	case 1:
		return Bold(theme.Apply(text, ElementHeading)), nil
	case 2:
		return Bold(theme.Apply(text, ElementSubheading)), nil
	case 3:
		return theme.Apply(text, ElementHeading), nil
	case 4:
		return theme.Apply(text, ElementSubheading), nil
	case 5:
		return Dim(theme.Apply(text, ElementSubheading)), nil
	default:
		return Dim(text), nil
	}
}

// Alert renders a one-line alert with a colored symbol prefix.
func Alert(theme Theme, kind AlertKind, text string) (string, error) {
	var sym string
	var element ElementKind

	switch kind {
	case AlertInfo:
		sym, element = Info(), ElementInfo
	case AlertSuccess:
		sym, element = Tick(), ElementSuccess
	case AlertWarning:
		sym, element = Warning(), ElementWarning
	case AlertError:
		sym, element = Cross(), ElementError
	default:
		return "", fmt.Errorf("unknown alert kind: %q", kind)
	}

	return theme.Apply(sym, element) + " " + text, nil
}

// Rule renders a horizontal rule. A width of zero uses the terminal width;
// an empty char uses the line symbol.
func Rule(width int, char string) string {
	if width <= 0 {
		width = TerminalWidth()
	}
	if char == "" {
		char = Line()
	}
	return strings.Repeat(char, width)
}

// Paragraph word-wraps text to the given width. A width of zero uses the
// terminal width.
func Paragraph(text string, width int) string {
	if width <= 0 {
		width = TerminalWidth()
	}
	if len(text) <= width {
		return text
	}

	words := strings.Fields(text)
	var lines []string
	var current []string
	length := 0

	for _, word := range words {
		// Account for the joining spaces already in the line.
		if length+len(word)+len(current) <= width {
			current = append(current, word)
			length += len(word)
			continue
		}
		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
		}
		current = []string{word}
		length = len(word)
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}

	return strings.Join(lines, "\n")
}

// BulletList renders items as an indented bulleted list.
func BulletList(items []string, indent int) string {
	if len(items) == 0 {
		return ""
	}

	prefix := strings.Repeat(" ", indent) + Bullet() + " "
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = prefix + item
	}
	return strings.Join(lines, "\n")
}

// NumberedList renders items as an indented numbered list.
func NumberedList(items []string, indent int) string {
	if len(items) == 0 {
		return ""
	}

	pad := strings.Repeat(" ", indent)
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("%s%d. %s", pad, i+1, item)
	}
	return strings.Join(lines, "\n")
}

// Box draws an ASCII box around content. A width of zero sizes the box to
// the longest content line plus padding.
func Box(content string, width, padding int) string {
	lines := strings.Split(strings.TrimSpace(content), "\n")

	if width <= 0 {
		longest := 0
		for _, line := range lines {
			if len(line) > longest {
				longest = len(line)
			}
		}
		width = longest + 2*padding + 2
	}

	// A width too small for borders plus padding leaves no room for content.
	innerWidth := width - 2 - 2*padding
	if innerWidth < 0 {
		innerWidth = 0
	}
	pad := strings.Repeat(" ", padding)
	border := "+" + strings.Repeat("-", innerWidth+2*padding) + "+"

	out := []string{border}
	for _, line := range lines {
		if len(line) > innerWidth {
			line = line[:innerWidth]
		}
		out = append(out, "|"+pad+line+strings.Repeat(" ", innerWidth-len(line))+pad+"|")
	}
	out = append(out, border)

	return strings.Join(out, "\n")
}

// Tree renders items as a flat tree, with connector glyphs distinguishing
// the last entry.
func Tree(items []string, indent int) string {
	if len(items) == 0 {
		return ""
	}

	pad := strings.Repeat(" ", indent)
	lines := make([]string, len(items))
	for i, item := range items {
		connector := TreeMid()
		if i == len(items)-1 {
			connector = TreeEnd()
		}
		lines[i] = pad + connector + " " + item
	}
	return strings.Join(lines, "\n")
}
