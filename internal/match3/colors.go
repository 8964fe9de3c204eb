package match3

import "math/rand"

// ColorSource supplies the color of each newly generated tile.
// Next must return a value in 1..colors.
type ColorSource interface {
	Next() int
}

// RandSource draws colors uniformly from a seeded math/rand generator.
type RandSource struct {
	rng    *rand.Rand
	colors int
}

// NewRandSource creates a RandSource for colors 1..colors.
func NewRandSource(colors int, seed int64) *RandSource {
	return &RandSource{
		rng:    rand.New(rand.NewSource(seed)),
		colors: colors,
	}
}

// Next returns a uniformly random color.
func (s *RandSource) Next() int {
	if s.colors <= 0 {
		return 1
	}
	return s.rng.Intn(s.colors) + 1
}

// SequenceSource replays a fixed list of colors, cycling when exhausted.
// Values outside 1..colors are folded back into range.
type SequenceSource struct {
	colors int
	values []int
	index  int
}

// NewSequenceSource creates a SequenceSource. With no values it cycles 1..colors.
func NewSequenceSource(colors int, values ...int) *SequenceSource {
	if len(values) == 0 {
		for c := 1; c <= colors; c++ {
			values = append(values, c)
		}
	}
	return &SequenceSource{colors: colors, values: values}
}

// Next returns the next queued color.
func (s *SequenceSource) Next() int {
	if len(s.values) == 0 || s.colors <= 0 {
		return 1
	}
	v := s.values[s.index%len(s.values)]
	s.index++
	return (((v-1)%s.colors)+s.colors)%s.colors + 1
}

// Drawn returns how many colors have been handed out.
func (s *SequenceSource) Drawn() int {
	return s.index
}
