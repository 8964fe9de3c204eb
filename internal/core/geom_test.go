package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := NewRect(5, 5, 10, 10)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{5, 5, true},
		{14, 14, true},
		{15, 14, false},
		{4, 5, false},
		{10, 10, true},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, r.Contains(tc.x, tc.y), "Contains(%d, %d)", tc.x, tc.y)
	}
}

func TestRectCentered(t *testing.T) {
	assert.Equal(t, NewRect(7, 3, 6, 4), NewRect(0, 0, 20, 10).Centered(6, 4))
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Clamp(tc.val, tc.min, tc.max), "Clamp(%d, %d, %d)", tc.val, tc.min, tc.max)
	}
}

func TestTilePalette(t *testing.T) {
	assert.Equal(t, ColorRed, TileColor(1))
	assert.Equal(t, ColorGray, TileColor(0), "empty tile should be gray")
	assert.Equal(t, TileColor(1), TileColor(9), "palette should wrap")
	assert.Equal(t, '·', TileGlyph(0))
	assert.NotEqual(t, TileGlyph(1), TileGlyph(2), "distinct ids should get distinct glyphs")
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrameWith(ActionLeft, ActionConfirm)
	assert.True(t, f.Has(ActionLeft))
	assert.True(t, f.Has(ActionConfirm))
	assert.False(t, f.Has(ActionHint))

	f.Clear()
	assert.False(t, f.Has(ActionLeft), "Clear should remove actions")

	var zero InputFrame
	assert.False(t, zero.Has(ActionUp))
	zero.Set(ActionUp)
	assert.True(t, zero.Has(ActionUp), "Set on zero frame should allocate")

	assert.Equal(t, "Hint", ActionHint.String())
	assert.Equal(t, "Unknown", Action(99).String())
}
