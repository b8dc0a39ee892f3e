package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeByName(t *testing.T) {
	for _, name := range ThemeNames() {
		theme, err := ThemeByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, theme.Name)
	}

	_, err := ThemeByName("solarized")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme")
}

func TestThemeColorFor(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, BrightWhite, theme.ColorFor(ElementHeading))
	assert.Equal(t, GreenColor, theme.ColorFor(ElementSuccess))
	assert.Equal(t, RedColor, theme.ColorFor(ElementError))
	// Unmapped kinds fall back to white.
	assert.Equal(t, White, theme.ColorFor("footer"))
}

func TestThemeApply(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "1")

	dark, err := ThemeByName("dark")
	require.NoError(t, err)
	assert.Equal(t, "\033[96mtitle\033[0m", dark.Apply("title", ElementHeading))

	minimal, err := ThemeByName("minimal")
	require.NoError(t, err)
	assert.Equal(t, "\033[37mok\033[0m", minimal.Apply("ok", ElementSuccess))
}
