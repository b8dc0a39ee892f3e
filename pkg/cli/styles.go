// Package cli provides terminal pretty-printing helpers: ANSI styles,
// unicode symbols with ASCII fallbacks, color themes, and semantic elements
// such as headings, alerts, boxes, and trees.
//
// Every helper returns a string; writing it is the caller's job.
package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape sequences.
const (
	reset = "\033[0m"

	codeBold      = "\033[1m"
	codeDim       = "\033[2m"
	codeItalic    = "\033[3m"
	codeUnderline = "\033[4m"
)

// ColorName names one of the sixteen ANSI foreground colors.
type ColorName string

const (
	Black         ColorName = "black"
	RedColor      ColorName = "red"
	GreenColor    ColorName = "green"
	YellowColor   ColorName = "yellow"
	BlueColor     ColorName = "blue"
	MagentaColor  ColorName = "magenta"
	CyanColor     ColorName = "cyan"
	White         ColorName = "white"
	BrightBlack   ColorName = "bright_black"
	BrightRed     ColorName = "bright_red"
	BrightGreen   ColorName = "bright_green"
	BrightYellow  ColorName = "bright_yellow"
	BrightBlue    ColorName = "bright_blue"
	BrightMagenta ColorName = "bright_magenta"
	BrightCyan    ColorName = "bright_cyan"
	BrightWhite   ColorName = "bright_white"
)

var colorCodes = map[ColorName]string{
	Black:         "\033[30m",
	RedColor:      "\033[31m",
	GreenColor:    "\033[32m",
	YellowColor:   "\033[33m",
	BlueColor:     "\033[34m",
	MagentaColor:  "\033[35m",
	CyanColor:     "\033[36m",
	White:         "\033[37m",
	BrightBlack:   "\033[90m",
	BrightRed:     "\033[91m",
	BrightGreen:   "\033[92m",
	BrightYellow:  "\033[93m",
	BrightBlue:    "\033[94m",
	BrightMagenta: "\033[95m",
	BrightCyan:    "\033[96m",
	BrightWhite:   "\033[97m",
}

// colorsEnabled decides whether escape sequences should be emitted.
// NO_COLOR always wins, FORCE_COLOR overrides detection, otherwise stdout
// must be a terminal with a TERM that advertises color.
func colorsEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}

	termEnv := strings.ToLower(os.Getenv("TERM"))
	switch termEnv {
	case "xterm", "xterm-256color", "screen", "linux":
		return true
	}
	return strings.Contains(termEnv, "color")
}

func apply(text, code string) string {
	if !colorsEnabled() {
		return text
	}
	return code + text + reset
}

// Bold makes text bold.
func Bold(text string) string { return apply(text, codeBold) }

// Dim makes text faint.
func Dim(text string) string { return apply(text, codeDim) }

// Italic makes text italic.
func Italic(text string) string { return apply(text, codeItalic) }

// Underline underlines text.
func Underline(text string) string { return apply(text, codeUnderline) }

// Color applies a named foreground color to text.
func Color(text string, name ColorName) (string, error) {
	code, ok := colorCodes[name]
	if !ok {
		return "", fmt.Errorf("unknown color: %q", name)
	}
	return apply(text, code), nil
}

func mustColor(text string, name ColorName) string {
	out, err := Color(text, name)
	if err != nil {
		return text
	}
	return out
}

// Convenience wrappers for the common colors.
func Red(text string) string     { return mustColor(text, RedColor) }
func Green(text string) string   { return mustColor(text, GreenColor) }
func Yellow(text string) string  { return mustColor(text, YellowColor) }
func Blue(text string) string    { return mustColor(text, BlueColor) }
func Magenta(text string) string { return mustColor(text, MagentaColor) }
func Cyan(text string) string    { return mustColor(text, CyanColor) }

// TerminalWidth returns the stdout column count, or 80 when stdout is not a
// terminal or its size cannot be read.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
