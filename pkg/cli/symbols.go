package cli

import (
	"fmt"
	"os"
	"strings"
)

// SymbolName names one of the output symbols.
type SymbolName string

const (
	SymbolTick       SymbolName = "tick"
	SymbolCross      SymbolName = "cross"
	SymbolWarning    SymbolName = "warning"
	SymbolInfo       SymbolName = "info"
	SymbolArrowRight SymbolName = "arrow_right"
	SymbolBullet     SymbolName = "bullet"
	SymbolLine       SymbolName = "line"
	SymbolCorner     SymbolName = "corner"
	SymbolTreeMid    SymbolName = "tree_mid"
	SymbolTreeEnd    SymbolName = "tree_end"
)

type symbolDef struct {
	unicode string
	ascii   string
}

var symbols = map[SymbolName]symbolDef{
	SymbolTick:       {"✔", "v"},
	SymbolCross:      {"✖", "x"},
	SymbolWarning:    {"⚠", "!"},
	SymbolInfo:       {"ℹ", "i"},
	SymbolArrowRight: {"→", "->"},
	SymbolBullet:     {"•", "*"},
	SymbolLine:       {"─", "-"},
	SymbolCorner:     {"└", "+"},
	SymbolTreeMid:    {"├", "+"},
	SymbolTreeEnd:    {"└", "+"},
}

// unicodeEnabled reports whether unicode symbols should be used. ASCII_ONLY
// forces the fallbacks; otherwise the locale must advertise UTF-8.
func unicodeEnabled() bool {
	if os.Getenv("ASCII_ONLY") != "" {
		return false
	}

	for _, env := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(env); v != "" {
			return strings.Contains(strings.ToLower(v), "utf-8") ||
				strings.Contains(strings.ToLower(v), "utf8")
		}
	}
	return false
}

// Symbol returns the named symbol, in unicode when the terminal supports it
// and as an ASCII fallback otherwise.
func Symbol(name SymbolName) (string, error) {
	def, ok := symbols[name]
	if !ok {
		return "", fmt.Errorf("unknown symbol: %q", name)
	}
	if unicodeEnabled() {
		return def.unicode, nil
	}
	return def.ascii, nil
}

func mustSymbol(name SymbolName) string {
	s, err := Symbol(name)
	if err != nil {
		return "?"
	}
	return s
}

// Convenience accessors for the common symbols.
func Tick() string       { return mustSymbol(SymbolTick) }
func Cross() string      { return mustSymbol(SymbolCross) }
func Warning() string    { return mustSymbol(SymbolWarning) }
func Info() string       { return mustSymbol(SymbolInfo) }
func ArrowRight() string { return mustSymbol(SymbolArrowRight) }
func Bullet() string     { return mustSymbol(SymbolBullet) }
func Line() string       { return mustSymbol(SymbolLine) }
func Corner() string     { return mustSymbol(SymbolCorner) }
func TreeMid() string    { return mustSymbol(SymbolTreeMid) }
func TreeEnd() string    { return mustSymbol(SymbolTreeEnd) }
