package match3

// CollapseAndRefill lets tiles fall to the bottom of each column, keeping
// their relative order, then fills the vacated slots from src. The lowest
// vacated slot is filled first, as if new tiles dropped in from above.
func CollapseAndRefill(b *Board, src ColorSource) {
	for x := range b.width {
		vacated := collapseColumn(b, x)
		for y := vacated - 1; y >= 0; y-- {
			b.cells[b.index(x, y)] = src.Next()
		}
	}
}

// collapseColumn compacts the non-empty cells of column x downward and
// returns the number of empty slots left at the top.
func collapseColumn(b *Board, x int) int {
	write := b.height - 1
	for y := b.height - 1; y >= 0; y-- {
		v := b.cells[b.index(x, y)]
		if v == EmptyCell {
			continue
		}
		b.cells[b.index(x, write)] = v
		write--
	}
	for y := write; y >= 0; y-- {
		b.cells[b.index(x, y)] = EmptyCell
	}
	return write + 1
}
