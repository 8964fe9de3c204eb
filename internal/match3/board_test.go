package match3

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, colors int, rows ...[]int) *Board {
	t.Helper()
	b, err := NewBoardFromRows(rows, colors)
	require.NoError(t, err)
	return b
}

func TestInitializeRejectsBadConfiguration(t *testing.T) {
	tests := []struct {
		name                  string
		width, height, colors int
	}{
		{"zero width", 0, 5, 4},
		{"negative height", 5, -1, 4},
		{"two colors", 5, 5, 2},
		{"no colors", 5, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Initialize(tt.width, tt.height, tt.colors, NewRandSource(tt.colors, 1))
			assert.Nil(t, b)
			assert.True(t, errors.Is(err, ErrInvalidConfiguration), "got %v", err)
		})
	}
}

func TestInitializeNilSource(t *testing.T) {
	_, err := Initialize(4, 4, 4, nil)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestInitializeProducesStableFullBoard(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		b, err := Initialize(8, 8, 5, NewRandSource(5, seed))
		require.NoError(t, err, "seed %d", seed)

		assert.Empty(t, FindMatches(b), "seed %d: board has matches after init", seed)
		assert.False(t, b.HasEmpty(), "seed %d: board has empty cells", seed)
		for y := range b.Height() {
			for x := range b.Width() {
				c := b.Get(x, y)
				assert.True(t, c >= 1 && c <= 5, "seed %d: color %d at (%d,%d)", seed, c, x, y)
			}
		}
	}
}

func TestInitializeWithMinimumColors(t *testing.T) {
	sizes := []struct{ width, height int }{{5, 5}, {8, 8}, {10, 10}, {16, 12}}

	for _, sz := range sizes {
		for seed := int64(1); seed <= 100; seed++ {
			b, err := Initialize(sz.width, sz.height, MinColors, NewRandSource(MinColors, seed))
			require.NoError(t, err, "%dx%d seed %d", sz.width, sz.height, seed)
			assert.Empty(t, FindMatches(b), "%dx%d seed %d", sz.width, sz.height, seed)
			assert.False(t, b.HasEmpty())
		}
	}
}

func TestInitializeIsDeterministicForSeed(t *testing.T) {
	a, err := Initialize(6, 7, 4, NewRandSource(4, 42))
	require.NoError(t, err)
	b, err := Initialize(6, 7, 4, NewRandSource(4, 42))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, 6, a.Width())
	assert.Equal(t, 7, a.Height())
	assert.Equal(t, 4, a.Colors())
}

func TestNewBoardFromRowsValidation(t *testing.T) {
	_, err := NewBoardFromRows([][]int{{1, 2}, {1}}, 3)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = NewBoardFromRows([][]int{{1, 4}}, 3)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = NewBoardFromRows(nil, 3)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	b, err := NewBoardFromRows([][]int{{1, EmptyCell, 3}}, 3)
	require.NoError(t, err)
	assert.True(t, b.HasEmpty())
}

func TestBoardAccessors(t *testing.T) {
	b := mustBoard(t, 3,
		[]int{1, 2, 3},
		[]int{3, 1, 2},
	)

	assert.True(t, b.InBounds(0, 0))
	assert.True(t, b.InBounds(2, 1))
	assert.False(t, b.InBounds(3, 0))
	assert.False(t, b.InBounds(0, 2))
	assert.False(t, b.InBounds(-1, 0))

	assert.Equal(t, 2, b.Get(2, 1))
	assert.Equal(t, EmptyCell, b.Get(5, 5))

	b.Set(0, 1, 2)
	assert.Equal(t, 2, b.Get(0, 1))
	b.Set(9, 9, 1) // ignored

	b.Swap(0, 0, 2, 0)
	assert.Equal(t, 3, b.Get(0, 0))
	assert.Equal(t, 1, b.Get(2, 0))
}

func TestSnapshotIsACopy(t *testing.T) {
	b := mustBoard(t, 3, []int{1, 2, 3}, []int{2, 3, 1})

	snap := b.Snapshot()
	assert.Equal(t, [][]int{{1, 2, 3}, {2, 3, 1}}, snap)

	snap[0][0] = 3
	assert.Equal(t, 1, b.Get(0, 0), "mutating a snapshot must not touch the board")
}

func TestCloneAndEqual(t *testing.T) {
	b := mustBoard(t, 3, []int{1, 2, 3})
	c := b.Clone()
	assert.True(t, b.Equal(c))

	c.Set(0, 0, 2)
	assert.False(t, b.Equal(c))
	assert.False(t, b.Equal(nil))
	assert.False(t, b.Equal(mustBoard(t, 3, []int{1, 2}, []int{3, 1})))
}
