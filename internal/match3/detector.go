package match3

// MinGroupSize is the smallest connected group that counts as a match.
const MinGroupSize = 3

// neighbours are the only adjacency used for matching. Diagonals never connect.
var neighbours = [4]Coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// MatchGroup is a maximal set of orthogonally connected cells sharing one color.
type MatchGroup struct {
	Color int
	Cells []Coord
}

// Size returns the number of cells in the group.
func (g MatchGroup) Size() int {
	return len(g.Cells)
}

// FindMatches labels the connected components of the board and returns every
// component of MinGroupSize or more non-empty cells. Cells are scanned in
// row-major order and visited at most once per call, so groups are disjoint
// and the result is deterministic for a given board.
func FindMatches(b *Board) []MatchGroup {
	visited := make([]bool, len(b.cells))
	var groups []MatchGroup

	for y := range b.height {
		for x := range b.width {
			i := b.index(x, y)
			if visited[i] || b.cells[i] == EmptyCell {
				continue
			}
			cells := floodFill(b, Coord{x, y}, visited)
			if len(cells) >= MinGroupSize {
				groups = append(groups, MatchGroup{Color: b.cells[i], Cells: cells})
			}
		}
	}
	return groups
}

// HasMatch reports whether FindMatches would return at least one group.
func HasMatch(b *Board) bool {
	return len(FindMatches(b)) > 0
}

// floodFill collects every cell reachable from start through same-colored
// orthogonal neighbours, marking each in visited.
func floodFill(b *Board, start Coord, visited []bool) []Coord {
	color := b.Get(start.X, start.Y)
	visited[b.index(start.X, start.Y)] = true

	queue := []Coord{start}
	var cells []Coord
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		cells = append(cells, c)

		for _, d := range neighbours {
			n := c.Add(d)
			if !b.InBounds(n.X, n.Y) {
				continue
			}
			ni := b.index(n.X, n.Y)
			if visited[ni] || b.cells[ni] != color {
				continue
			}
			visited[ni] = true
			queue = append(queue, n)
		}
	}
	return cells
}
