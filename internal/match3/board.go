package match3

import "fmt"

// EmptyCell marks a cell with no tile. Real colors start at 1.
const EmptyCell = 0

// MinColors is the smallest palette Initialize accepts.
const MinColors = 3

// Coord is a cell position. X grows to the right, Y grows downward.
type Coord struct {
	X, Y int
}

// Add returns the coordinate offset by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Board is a width x height grid of color ids stored in row-major order:
// index = y*width + x.
type Board struct {
	width  int
	height int
	colors int
	cells  []int
}

// newBoard allocates an all-empty board without validating its parameters.
func newBoard(width, height, colors int) *Board {
	return &Board{
		width:  width,
		height: height,
		colors: colors,
		cells:  make([]int, width*height),
	}
}

// maxRedraws is how many colors Initialize draws for one cell before it
// settles on the lowest safe color.
const maxRedraws = 8

// Initialize creates a board filled from src that contains no match and no
// empty cell. Cells are filled in row-major order; a drawn color that would
// complete a group with the cells already placed is drawn again.
func Initialize(width, height, colors int, src ColorSource) (*Board, error) {
	if err := validateDimensions(width, height, colors); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil color source", ErrInvalidConfiguration)
	}

	b := newBoard(width, height, colors)
	for y := range height {
		for x := range width {
			b.cells[b.index(x, y)] = b.drawSafeColor(x, y, src)
		}
	}
	return b, nil
}

// drawSafeColor picks a color for (x, y) that keeps its group below
// MinGroupSize. Only the left and upper neighbours are filled at this point,
// so at most two colors are unsafe and MinColors guarantees a safe one.
func (b *Board) drawSafeColor(x, y int, src ColorSource) int {
	for range maxRedraws {
		if c := src.Next(); !b.completesGroup(x, y, c) {
			return c
		}
	}
	for c := 1; c <= b.colors; c++ {
		if !b.completesGroup(x, y, c) {
			return c
		}
	}
	return 1 // unreachable while colors >= MinColors
}

// completesGroup reports whether placing color at (x, y) would connect it to
// a group of MinGroupSize or more cells. The cell is restored before returning.
func (b *Board) completesGroup(x, y, color int) bool {
	i := b.index(x, y)
	prev := b.cells[i]
	b.cells[i] = color
	defer func() { b.cells[i] = prev }()

	start := Coord{x, y}
	seen := map[Coord]bool{start: true}
	queue := []Coord{start}
	for len(queue) > 0 && len(seen) < MinGroupSize {
		c := queue[0]
		queue = queue[1:]
		for _, d := range neighbours {
			n := c.Add(d)
			if seen[n] || !b.InBounds(n.X, n.Y) || b.cells[b.index(n.X, n.Y)] != color {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return len(seen) >= MinGroupSize
}

// NewBoardFromRows builds a board from explicit rows (rows[y][x]).
// Every row must have the same length and every value must be EmptyCell or
// within 1..colors. The board is not resolved.
func NewBoardFromRows(rows [][]int, colors int) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidConfiguration)
	}
	width := len(rows[0])
	if err := validateDimensions(width, len(rows), colors); err != nil {
		return nil, err
	}

	b := newBoard(width, len(rows), colors)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidConfiguration, y, len(row), width)
		}
		for x, v := range row {
			if v != EmptyCell && (v < 1 || v > colors) {
				return nil, fmt.Errorf("%w: color %d at (%d,%d) outside 1..%d", ErrInvalidConfiguration, v, x, y, colors)
			}
			b.cells[b.index(x, y)] = v
		}
	}
	return b, nil
}

func validateDimensions(width, height, colors int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: board size %dx%d", ErrInvalidConfiguration, width, height)
	}
	if colors < MinColors {
		return fmt.Errorf("%w: %d colors, need at least %d", ErrInvalidConfiguration, colors, MinColors)
	}
	return nil
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Colors returns the size of the palette.
func (b *Board) Colors() int {
	return b.colors
}

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the color at (x, y), or EmptyCell if out of bounds.
func (b *Board) Get(x, y int) int {
	if !b.InBounds(x, y) {
		return EmptyCell
	}
	return b.cells[b.index(x, y)]
}

// Set stores color at (x, y). Out-of-bounds writes are ignored.
func (b *Board) Set(x, y, color int) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[b.index(x, y)] = color
}

// Swap exchanges two cells unconditionally. Legality is checked by AttemptSwap.
func (b *Board) Swap(x1, y1, x2, y2 int) {
	if !b.InBounds(x1, y1) || !b.InBounds(x2, y2) {
		return
	}
	i, j := b.index(x1, y1), b.index(x2, y2)
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]int, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		width:  b.width,
		height: b.height,
		colors: b.colors,
		cells:  cells,
	}
}

// Equal reports whether two boards have the same shape and cell values.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.width != other.width || b.height != other.height {
		return false
	}
	for i, v := range b.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// Snapshot returns a copy of the grid as rows (snapshot[y][x]).
func (b *Board) Snapshot() [][]int {
	rows := make([][]int, b.height)
	for y := range b.height {
		rows[y] = make([]int, b.width)
		copy(rows[y], b.cells[y*b.width:(y+1)*b.width])
	}
	return rows
}

// HasEmpty reports whether any cell is empty.
func (b *Board) HasEmpty() bool {
	for _, v := range b.cells {
		if v == EmptyCell {
			return true
		}
	}
	return false
}
