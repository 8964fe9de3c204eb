package match3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasAnyLegalMoveDeadlocked(t *testing.T) {
	b := mustBoard(t, 3,
		[]int{1, 2},
		[]int{2, 3},
	)
	before := b.Clone()

	assert.False(t, HasAnyLegalMove(b))
	assert.True(t, b.Equal(before), "probing must leave the board unchanged")
}

func TestFindLegalMoveReturnsFirstCandidate(t *testing.T) {
	b := mustBoard(t, 3, []int{1, 1, 2, 1, 1})
	before := b.Clone()

	m, ok := FindLegalMove(b)
	require.True(t, ok)
	assert.Equal(t, NewMove(1, 0, 2, 0), m)
	assert.True(t, HasAnyLegalMove(b))
	assert.True(t, b.Equal(before))
}

func TestFindLegalMoveVertical(t *testing.T) {
	b := mustBoard(t, 3,
		[]int{1, 2},
		[]int{1, 3},
		[]int{2, 1},
	)

	m, ok := FindLegalMove(b)
	require.True(t, ok)
	assert.Equal(t, NewMove(1, 1, 1, 2), m)
}

// HasAnyLegalMove must agree with trying every adjacent swap for real.
func TestHasAnyLegalMoveMatchesAttemptSwap(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		b, err := Initialize(4, 4, 5, NewRandSource(5, seed))
		require.NoError(t, err)

		accepted := false
		for y := range b.Height() {
			for x := range b.Width() {
				for _, d := range []Coord{{1, 0}, {0, 1}} {
					to := Coord{x, y}.Add(d)
					if !b.InBounds(to.X, to.Y) {
						continue
					}
					result, err := AttemptSwap(b.Clone(), Move{From: Coord{x, y}, To: to}, NewRandSource(5, seed))
					require.NoError(t, err)
					accepted = accepted || result.Accepted
				}
			}
		}

		assert.Equal(t, accepted, HasAnyLegalMove(b), "seed %d", seed)
	}
}
