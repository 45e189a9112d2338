package t2048

// Snapshot captures the resting layout of a board for tests and debug logs.
type Snapshot struct {
	Moves   int // Accepted moves since the last reset
	Score   int
	Cells   [][]int // Cells[y][x], 0 for empty; only Static tiles are listed
	MaxTile int     // Highest tile on board
	Settled bool
}

// Snapshot returns the current board snapshot.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Moves:   b.moves,
		Score:   b.score.Points(),
		Cells:   b.cells(),
		MaxTile: b.MaxTile(),
		Settled: b.IsSettled(),
	}
}

// cells returns the values of Static tiles indexed [y][x].
func (b *Board) cells() [][]int {
	cells := make([][]int, b.height)
	for y := range cells {
		cells[y] = make([]int, b.width)
	}
	for _, t := range b.tiles {
		if _, ok := t.Status.(Static); ok {
			cells[t.Y][t.X] = t.Value
		}
	}
	return cells
}
