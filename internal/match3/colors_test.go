package match3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandSourceRange(t *testing.T) {
	src := NewRandSource(4, 7)
	seen := make(map[int]bool)
	for range 1000 {
		c := src.Next()
		assert.True(t, c >= 1 && c <= 4, "color %d out of range", c)
		seen[c] = true
	}
	assert.Len(t, seen, 4)
}

func TestSequenceSource(t *testing.T) {
	src := NewSequenceSource(3, 2, 3, 5)
	assert.Equal(t, 2, src.Next())
	assert.Equal(t, 3, src.Next())
	assert.Equal(t, 2, src.Next(), "5 folds into 1..3")
	assert.Equal(t, 2, src.Next(), "cycles back to the start")
	assert.Equal(t, 4, src.Drawn())

	cycling := NewSequenceSource(3)
	assert.Equal(t, []int{1, 2, 3, 1}, []int{cycling.Next(), cycling.Next(), cycling.Next(), cycling.Next()})
}
