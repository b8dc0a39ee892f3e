package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Tag
		wantErr bool
	}{
		{"v1.2.3", Tag{1, 2, 3}, false},
		{"v0.0.0", Tag{0, 0, 0}, false},
		{"v0.1.0", Tag{0, 1, 0}, false},
		{"v10.20.30", Tag{10, 20, 30}, false},
		{"1.2.3", Tag{}, true},
		{"v1.2", Tag{}, true},
		{"v1.2.3.4", Tag{}, true},
		{"v1.2.3-rc1", Tag{}, true},
		{"v1.2.3+build", Tag{}, true},
		{"v-1.2.3", Tag{}, true},
		{"v1.2.x", Tag{}, true},
		{"latest", Tag{}, true},
		{"", Tag{}, true},
		{" v1.2.3", Tag{}, true},
		{"v1.2.3 ", Tag{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, s := range []string{"v0.0.0", "v0.1.0", "v1.0.0", "v1.2.3", "v12.0.7", "v3.14.159"} {
		tag, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, tag.String())
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b Tag
		want int
	}{
		{Tag{1, 2, 3}, Tag{1, 2, 3}, 0},
		{Tag{1, 2, 3}, Tag{1, 2, 4}, -1},
		{Tag{1, 2, 3}, Tag{1, 3, 0}, -1},
		{Tag{1, 2, 3}, Tag{2, 0, 0}, -1},
		{Tag{2, 0, 0}, Tag{1, 9, 9}, 1},
		{Tag{1, 10, 0}, Tag{1, 9, 9}, 1},
		{Tag{0, 0, 1}, Tag{0, 0, 0}, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Compare(tt.a, tt.b), "Compare(%v, %v)", tt.a, tt.b)
		assert.Equal(t, -tt.want, Compare(tt.b, tt.a), "Compare(%v, %v)", tt.b, tt.a)
	}
}

func TestLessOrEqualTotalOrder(t *testing.T) {
	tags := []Tag{
		{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {1, 0, 0}, {1, 2, 3}, {1, 3, 0}, {2, 0, 0},
	}

	for _, a := range tags {
		assert.True(t, LessOrEqual(a, a), "reflexive: %v", a)
		for _, b := range tags {
			// Antisymmetry: mutual LessOrEqual implies equality.
			if LessOrEqual(a, b) && LessOrEqual(b, a) {
				assert.Equal(t, a, b)
			}
			// Totality: at least one direction holds.
			assert.True(t, LessOrEqual(a, b) || LessOrEqual(b, a))
			for _, c := range tags {
				if LessOrEqual(a, b) && LessOrEqual(b, c) {
					assert.True(t, LessOrEqual(a, c), "transitive: %v <= %v <= %v", a, b, c)
				}
			}
		}
	}
}

func TestIsNext(t *testing.T) {
	tests := []struct {
		a, b Tag
		want bool
	}{
		{Tag{1, 2, 3}, Tag{1, 2, 4}, true},
		{Tag{1, 2, 3}, Tag{1, 3, 0}, true},
		{Tag{1, 2, 3}, Tag{2, 0, 0}, true},
		{Tag{1, 2, 3}, Tag{1, 2, 3}, false},
		{Tag{1, 2, 3}, Tag{1, 2, 5}, false},
		{Tag{1, 2, 3}, Tag{1, 3, 1}, false},
		{Tag{1, 2, 3}, Tag{1, 4, 0}, false},
		{Tag{1, 2, 3}, Tag{2, 0, 1}, false},
		{Tag{1, 2, 3}, Tag{2, 1, 0}, false},
		{Tag{1, 2, 3}, Tag{3, 0, 0}, false},
		{Tag{1, 2, 3}, Tag{1, 2, 2}, false},
		{Tag{1, 2, 3}, Tag{0, 0, 0}, false},
		{Tag{0, 0, 0}, Tag{0, 0, 1}, true},
		{Tag{0, 0, 0}, Tag{1, 0, 0}, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsNext(tt.a, tt.b), "IsNext(%v, %v)", tt.a, tt.b)
	}
}

// Every tag has exactly three sequential successors: the major, minor, and
// micro bumps.
func TestIsNextExactlyThreeSuccessors(t *testing.T) {
	bases := []Tag{{0, 0, 0}, {1, 2, 3}, {2, 0, 5}, {0, 9, 0}}

	for _, a := range bases {
		var successors []Tag
		// Scan a window around the base; all successors fall inside it.
		for major := 0; major <= a.Major+2; major++ {
			for minor := 0; minor <= a.Minor+2; minor++ {
				for micro := 0; micro <= a.Micro+2; micro++ {
					b := Tag{major, minor, micro}
					if IsNext(a, b) {
						successors = append(successors, b)
					}
				}
			}
		}
		assert.ElementsMatch(t, []Tag{
			{a.Major + 1, 0, 0},
			{a.Major, a.Minor + 1, 0},
			{a.Major, a.Minor, a.Micro + 1},
		}, successors, "successors of %v", a)
	}
}

func TestBump(t *testing.T) {
	base := Tag{1, 2, 3}

	assert.Equal(t, Tag{2, 0, 0}, base.Bump(BumpMajor))
	assert.Equal(t, Tag{1, 3, 0}, base.Bump(BumpMinor))
	assert.Equal(t, Tag{1, 2, 4}, base.Bump(BumpMicro))
	assert.Panics(t, func() { base.Bump(BumpCustom) })
}

func TestParseBump(t *testing.T) {
	for name, want := range map[string]Bump{"major": BumpMajor, "minor": BumpMinor, "micro": BumpMicro} {
		got, err := ParseBump(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseBump("custom")
	assert.Error(t, err)
	_, err = ParseBump("patch")
	assert.Error(t, err)
}

func TestCandidates(t *testing.T) {
	assert.Equal(t, [3]Tag{{2, 0, 0}, {1, 3, 0}, {1, 2, 4}}, Tag{1, 2, 3}.Candidates())
}
