package match3

// FindLegalMove tries every adjacent pair, right neighbour then bottom
// neighbour for each cell in row-major order, and returns the first one whose
// swap produces a match. The board is unchanged on return.
func FindLegalMove(b *Board) (Move, bool) {
	for y := range b.height {
		for x := range b.width {
			if x+1 < b.width {
				if m := NewMove(x, y, x+1, y); swapMatches(b, m) {
					return m, true
				}
			}
			if y+1 < b.height {
				if m := NewMove(x, y, x, y+1); swapMatches(b, m) {
					return m, true
				}
			}
		}
	}
	return Move{}, false
}

// HasAnyLegalMove reports whether some adjacent swap would be accepted.
// A stable board for which it returns false is deadlocked.
func HasAnyLegalMove(b *Board) bool {
	_, ok := FindLegalMove(b)
	return ok
}
