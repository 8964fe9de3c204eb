package match3

import "fmt"

// PointsPerCell is awarded for every distinct cell cleared by a cascade pass.
const PointsPerCell = 10

// MaxCascadePasses bounds the resolve loop. Random refills can chain for a
// long time on boards with few colors, so the bound sits far above what play
// reaches; hitting it means the color source or the engine is broken.
const MaxCascadePasses = 4096

// CascadePass records one remove-collapse-refill step.
type CascadePass struct {
	Groups  []MatchGroup
	Cleared int // distinct cells emptied in this pass
	Score   int

	// Removed is the grid right after clearing, with EmptyCell holes.
	Removed [][]int
	// Settled is the grid after collapse and refill.
	Settled [][]int
}

// Cascade is the full outcome of Resolve.
type Cascade struct {
	Passes []CascadePass
	Score  int
}

// Cleared returns the total number of cells cleared across all passes.
func (c Cascade) Cleared() int {
	total := 0
	for _, p := range c.Passes {
		total += p.Cleared
	}
	return total
}

// Resolve repeatedly clears every matched cell, collapses and refills, until
// FindMatches reports nothing. It returns ErrCascadeDidNotStabilize if the
// board is still unstable after MaxCascadePasses passes; the board is left as
// it was at that point.
func Resolve(b *Board, src ColorSource) (Cascade, error) {
	var result Cascade

	for pass := 0; ; pass++ {
		groups := FindMatches(b)
		if len(groups) == 0 {
			return result, nil
		}
		if pass >= MaxCascadePasses {
			return result, fmt.Errorf("%w: still matching after %d passes", ErrCascadeDidNotStabilize, pass)
		}

		cleared := clearGroups(b, groups)
		removed := b.Snapshot()
		CollapseAndRefill(b, src)

		step := CascadePass{
			Groups:  groups,
			Cleared: cleared,
			Score:   cleared * PointsPerCell,
			Removed: removed,
			Settled: b.Snapshot(),
		}
		result.Passes = append(result.Passes, step)
		result.Score += step.Score
	}
}

// clearGroups empties every cell of every group once and returns the number
// of distinct cells cleared.
func clearGroups(b *Board, groups []MatchGroup) int {
	cleared := 0
	for _, g := range groups {
		for _, c := range g.Cells {
			i := b.index(c.X, c.Y)
			if b.cells[i] == EmptyCell {
				continue
			}
			b.cells[i] = EmptyCell
			cleared++
		}
	}
	return cleared
}
