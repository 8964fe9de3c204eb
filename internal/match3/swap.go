package match3

import "fmt"

// Move is a request to swap two cells.
type Move struct {
	From, To Coord
}

// NewMove builds a Move from raw coordinates.
func NewMove(x1, y1, x2, y2 int) Move {
	return Move{From: Coord{x1, y1}, To: Coord{x2, y2}}
}

// IsAdjacent reports whether the two cells are orthogonal neighbours
// (Manhattan distance exactly 1).
func (m Move) IsAdjacent() bool {
	return abs(m.From.X-m.To.X)+abs(m.From.Y-m.To.Y) == 1
}

// String formats the move as "x1,y1->x2,y2".
func (m Move) String() string {
	return fmt.Sprintf("%d,%d->%d,%d", m.From.X, m.From.Y, m.To.X, m.To.Y)
}

// SwapResult is the outcome of a structurally valid swap.
type SwapResult struct {
	Accepted   bool
	ScoreDelta int
	Cascade    Cascade
}

// AttemptSwap validates and plays a move. Out-of-board cells fail with
// ErrInvalidPosition and non-neighbours with ErrInvalidMove; in both cases
// the board is untouched. A swap that creates no match is undone and
// reported as not accepted, leaving the board exactly as before. Otherwise
// the cascade is resolved and its score returned.
func AttemptSwap(b *Board, m Move, src ColorSource) (SwapResult, error) {
	if !b.InBounds(m.From.X, m.From.Y) || !b.InBounds(m.To.X, m.To.Y) {
		return SwapResult{}, fmt.Errorf("%w: %s on %dx%d board", ErrInvalidPosition, m, b.width, b.height)
	}
	if !m.IsAdjacent() {
		return SwapResult{}, fmt.Errorf("%w: %s is not an adjacent pair", ErrInvalidMove, m)
	}

	b.Swap(m.From.X, m.From.Y, m.To.X, m.To.Y)
	if !HasMatch(b) {
		b.Swap(m.From.X, m.From.Y, m.To.X, m.To.Y)
		return SwapResult{}, nil
	}

	cascade, err := Resolve(b, src)
	return SwapResult{Accepted: true, ScoreDelta: cascade.Score, Cascade: cascade}, err
}

// swapMatches swaps the pair, checks for a match and swaps back.
// The board is unchanged on return.
func swapMatches(b *Board, m Move) bool {
	b.Swap(m.From.X, m.From.Y, m.To.X, m.To.Y)
	matched := HasMatch(b)
	b.Swap(m.From.X, m.From.Y, m.To.X, m.To.Y)
	return matched
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
