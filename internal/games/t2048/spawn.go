package t2048

import "math/rand"

// Occupancy answers which cells of a grid hold a tile.
type Occupancy interface {
	Width() int
	Height() int
	Occupied(x, y int) bool
}

// Spawner places new tiles in random empty cells.
type Spawner struct {
	rng        *rand.Rand
	spawn4Prob float64
}

// NewSpawner creates a spawner that yields 4 with probability spawn4Prob
// and 2 otherwise.
func NewSpawner(rng *rand.Rand, spawn4Prob float64) *Spawner {
	return &Spawner{rng: rng, spawn4Prob: spawn4Prob}
}

// Pick chooses a cell and value for a new tile.
// ok is false when the grid has no empty cell.
func (s *Spawner) Pick(grid Occupancy) (x, y, value int, ok bool) {
	var empty []cell
	for cy := range grid.Height() {
		for cx := range grid.Width() {
			if !grid.Occupied(cx, cy) {
				empty = append(empty, cell{cx, cy})
			}
		}
	}
	if len(empty) == 0 {
		return 0, 0, 0, false
	}

	// Pick random empty cell
	c := empty[s.rng.Intn(len(empty))]

	// Determine value (90% 2, 10% 4 by default)
	value = 2
	if s.rng.Float64() < s.spawn4Prob {
		value = 4
	}

	return c.x, c.y, value, true
}
