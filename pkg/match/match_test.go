package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPMatch(t *testing.T) {
	table := []string{"major", "minor", "micro", "custom"}

	tests := []struct {
		x    string
		want int
	}{
		{"major", 0},
		{"custom", 3},
		{"maj", 0},
		{"cu", 3},
		{"mi", Ambiguous},
		{"m", Ambiguous},
		{"patch", NoMatch},
		{"", NoMatch},
		{"majors", NoMatch},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PMatch(tt.x, table), "PMatch(%q)", tt.x)
	}
}

// An exact match wins even when it is also a prefix of another entry.
func TestPMatchExactBeatsPrefix(t *testing.T) {
	assert.Equal(t, 0, PMatch("min", []string{"min", "minor"}))
}

func TestMatchArg(t *testing.T) {
	choices := []string{"major", "minor", "micro"}

	got, err := MatchArg("minor", choices)
	require.NoError(t, err)
	assert.Equal(t, "minor", got)

	got, err = MatchArg("maj", choices)
	require.NoError(t, err)
	assert.Equal(t, "major", got)

	_, err = MatchArg("mi", choices)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minor, micro")

	_, err = MatchArg("patch", choices)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "major, minor, micro")
}

func TestMatchArgDedupesChoices(t *testing.T) {
	got, err := MatchArg("mi", []string{"minor", "minor", "minimal"})
	require.Error(t, err)
	assert.Empty(t, got)

	got, err = MatchArg("mino", []string{"minor", "minor"})
	require.NoError(t, err)
	assert.Equal(t, "minor", got)
}

func TestMatchArgs(t *testing.T) {
	choices := []string{"major", "minor", "micro"}

	got, err := MatchArgs([]string{"maj", "micro"}, choices)
	require.NoError(t, err)
	assert.Equal(t, []string{"major", "micro"}, got)

	// Ambiguous elements expand to all prefix matches.
	got, err = MatchArgs([]string{"mi"}, choices)
	require.NoError(t, err)
	assert.Equal(t, []string{"minor", "micro"}, got)

	_, err = MatchArgs([]string{"maj", "patch"}, choices)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "element 1")
}
