package match3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMatchesIgnoresDiagonals(t *testing.T) {
	b := mustBoard(t, 3,
		[]int{1, 2, 3},
		[]int{3, 1, 2},
		[]int{2, 3, 1},
	)
	assert.Empty(t, FindMatches(b))
}

func TestFindMatchesMergesLShape(t *testing.T) {
	b := mustBoard(t, 3,
		[]int{1, 1, 1},
		[]int{1, 2, 3},
		[]int{1, 3, 2},
	)

	groups := FindMatches(b)
	require.Len(t, groups, 1)
	assert.Equal(t, 1, groups[0].Color)
	assert.ElementsMatch(t,
		[]Coord{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {0, 2}},
		groups[0].Cells,
	)
	assert.Equal(t, 5, groups[0].Size())
}

func TestFindMatchesRowMajorOrderAndDisjoint(t *testing.T) {
	b := mustBoard(t, 3,
		[]int{1, 1, 1, 2},
		[]int{3, 3, 2, 2},
	)

	groups := FindMatches(b)
	require.Len(t, groups, 2)

	assert.Equal(t, 1, groups[0].Color)
	assert.ElementsMatch(t, []Coord{{0, 0}, {1, 0}, {2, 0}}, groups[0].Cells)

	assert.Equal(t, 2, groups[1].Color)
	assert.ElementsMatch(t, []Coord{{3, 0}, {2, 1}, {3, 1}}, groups[1].Cells)

	seen := make(map[Coord]bool)
	for _, g := range groups {
		for _, c := range g.Cells {
			assert.False(t, seen[c], "cell %v in two groups", c)
			seen[c] = true
		}
	}
}

func TestFindMatchesSkipsPairsAndEmpties(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want int
	}{
		{"pair only", [][]int{{1, 1, 2}}, 0},
		{"all empty", [][]int{{0, 0, 0}, {0, 0, 0}}, 0},
		{"empties split a run", [][]int{{1, 1, 0, 1}}, 0},
		{"vertical run", [][]int{{2}, {2}, {2}}, 1},
		{"long run is one group", [][]int{{3, 3, 3, 3, 3}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, 3, tt.rows...)
			assert.Len(t, FindMatches(b), tt.want)
			assert.Equal(t, tt.want > 0, HasMatch(b))
		})
	}
}

func TestFindMatchesIsDeterministic(t *testing.T) {
	b := mustBoard(t, 3,
		[]int{1, 1, 1, 2, 2},
		[]int{3, 2, 2, 2, 1},
		[]int{3, 3, 1, 1, 1},
	)
	first := FindMatches(b)
	for range 10 {
		assert.Equal(t, first, FindMatches(b))
	}
}
