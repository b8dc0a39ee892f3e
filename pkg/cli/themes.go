package cli

import "fmt"

// ElementKind names a themeable element category.
type ElementKind string

const (
	ElementHeading    ElementKind = "heading"
	ElementSubheading ElementKind = "subheading"
	ElementSuccess    ElementKind = "success"
	ElementError      ElementKind = "error"
	ElementWarning    ElementKind = "warning"
	ElementInfo       ElementKind = "info"
	ElementDim        ElementKind = "dim"
)

// Theme maps element kinds to colors. Themes are plain values passed
// explicitly by callers; there is no process-wide current theme.
type Theme struct {
	Name   string
	Colors map[ElementKind]ColorName
}

// ColorFor returns the theme's color for the element kind, defaulting to
// white for kinds the theme does not cover.
func (t Theme) ColorFor(kind ElementKind) ColorName {
	if c, ok := t.Colors[kind]; ok {
		return c
	}
	return White
}

// Apply colors text according to the theme's mapping for the element kind.
func (t Theme) Apply(text string, kind ElementKind) string {
	return mustColor(text, t.ColorFor(kind))
}

var builtins = map[string]Theme{
	"default": {
		Name: "default",
		Colors: map[ElementKind]ColorName{
			ElementHeading:    BrightWhite,
			ElementSubheading: White,
			ElementSuccess:    GreenColor,
			ElementError:      RedColor,
			ElementWarning:    YellowColor,
			ElementInfo:       BlueColor,
			ElementDim:        BrightBlack,
		},
	},
	"dark": {
		Name: "dark",
		Colors: map[ElementKind]ColorName{
			ElementHeading:    BrightCyan,
			ElementSubheading: CyanColor,
			ElementSuccess:    BrightGreen,
			ElementError:      BrightRed,
			ElementWarning:    BrightYellow,
			ElementInfo:       BrightBlue,
			ElementDim:        BrightBlack,
		},
	},
	"light": {
		Name: "light",
		Colors: map[ElementKind]ColorName{
			ElementHeading:    Black,
			ElementSubheading: BrightBlack,
			ElementSuccess:    GreenColor,
			ElementError:      RedColor,
			ElementWarning:    YellowColor,
			ElementInfo:       BlueColor,
			ElementDim:        BrightBlack,
		},
	},
	"minimal": {
		Name: "minimal",
		Colors: map[ElementKind]ColorName{
			ElementHeading:    White,
			ElementSubheading: White,
			ElementSuccess:    White,
			ElementError:      White,
			ElementWarning:    White,
			ElementInfo:       White,
			ElementDim:        BrightBlack,
		},
	},
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtins["default"]
}

// ThemeByName looks up a built-in theme.
func ThemeByName(name string) (Theme, error) {
	t, ok := builtins[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme: %q (available: %v)", name, ThemeNames())
	}
	return t, nil
}

// ThemeNames lists the built-in theme names in a stable order.
func ThemeNames() []string {
	return []string{"default", "dark", "light", "minimal"}
}
