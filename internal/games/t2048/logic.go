package t2048

import "fmt"

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every move direction.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Vector returns the unit step tiles take when pushed in this direction.
// Y grows downwards.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		panic(fmt.Sprintf("t2048: unknown direction %d", int(d)))
	}
}

// cell is a grid coordinate.
type cell struct {
	x, y int
}

// slot is one cell of a line while a move is being planned.
// A claimed slot holds a merge destination plus the tile sliding onto it;
// it may still be compacted but never takes part in another merge.
type slot struct {
	tiles   []*Tile
	claimed bool
}

func (s slot) empty() bool {
	return len(s.tiles) == 0
}

// lines returns every row (horizontal moves) or column (vertical moves),
// each ordered from the push edge inward.
func (b *Board) lines(dir Direction) [][]cell {
	dx, dy := dir.Vector()

	var lines [][]cell
	if dx != 0 {
		start := 0
		if dx > 0 {
			start = b.width - 1
		}
		for y := range b.height {
			line := make([]cell, 0, b.width)
			for x := start; x >= 0 && x < b.width; x -= dx {
				line = append(line, cell{x, y})
			}
			lines = append(lines, line)
		}
		return lines
	}

	start := 0
	if dy > 0 {
		start = b.height - 1
	}
	for x := range b.width {
		line := make([]cell, 0, b.height)
		for y := start; y >= 0 && y < b.height; y -= dy {
			line = append(line, cell{x, y})
		}
		lines = append(lines, line)
	}
	return lines
}

// slide pushes every line toward dir, starting Moving animations and
// recording pending merges. Returns whether any tile moved or merged.
func (b *Board) slide(dir Direction) bool {
	changed := false
	for _, line := range b.lines(dir) {
		if b.slideLine(line) {
			changed = true
		}
	}
	return changed
}

// slideLine runs compaction and merge detection on one line until a full
// repetition changes nothing.
func (b *Board) slideLine(line []cell) bool {
	slots := make([]slot, len(line))
	for i, c := range line {
		if t := b.tileAt(c.x, c.y); t != nil {
			slots[i].tiles = []*Tile{t}
		}
	}

	moved := false
	// Every repetition either removes a gap or a merge candidate, so the
	// line length bounds the loop.
	for range len(line) + 1 {
		changed := b.compact(line, slots)
		if b.detectMerges(line, slots) {
			changed = true
		}
		if !changed {
			break
		}
		moved = true
	}
	return moved
}

// compact fills each empty slot, in scan order, with the nearest occupied
// slot further back along the line.
func (b *Board) compact(line []cell, slots []slot) bool {
	changed := false
	for i := range slots {
		if !slots[i].empty() {
			continue
		}

		j := i + 1
		for j < len(slots) && slots[j].empty() {
			j++
		}
		if j == len(slots) {
			break
		}

		for _, t := range slots[j].tiles {
			b.startMoving(t, line[i])
		}
		slots[i], slots[j] = slots[j], slot{}
		changed = true
	}
	return changed
}

// detectMerges pairs equal neighbours from the push edge inward. The farther
// tile of a pair slides onto the nearer one; the combined tile is created
// later, when the board settles.
func (b *Board) detectMerges(line []cell, slots []slot) bool {
	changed := false
	for i := 0; i+1 < len(slots); i++ {
		dst, src := &slots[i], &slots[i+1]
		if dst.empty() || src.empty() || dst.claimed || src.claimed {
			continue
		}
		if dst.tiles[0].Value != src.tiles[0].Value {
			continue
		}

		t := src.tiles[0]
		b.startMoving(t, line[i])
		t.mergeInto = dst.tiles[0].ID

		dst.tiles = append(dst.tiles, t)
		dst.claimed = true
		*src = slot{}
		changed = true

		b.logger.Debug("merge planned", "value", t.Value*2, "x", line[i].x, "y", line[i].y)

		// The vacated slot cannot be a destination in this pass
		i++
	}
	return changed
}

// startMoving sends a tile toward c.
func (b *Board) startMoving(t *Tile, c cell) {
	t.startMoving(c.x, c.y, b.settings.Animation.MoveTime, b.geo)
}

// CanMove returns true if any move is possible.
// An animating board always reports true: its final layout is not known yet.
func (b *Board) CanMove() bool {
	if !b.IsSettled() {
		return true
	}

	cells := b.cells()
	for y := range b.height {
		for x := range b.width {
			val := cells[y][x]
			if val == 0 {
				return true
			}
			// Check right neighbor
			if x < b.width-1 && cells[y][x+1] == val {
				return true
			}
			// Check bottom neighbor
			if y < b.height-1 && cells[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the maximum tile value on the board.
func (b *Board) MaxTile() int {
	maxVal := 0
	for _, t := range b.tiles {
		if t.Value > maxVal {
			maxVal = t.Value
		}
	}
	return maxVal
}

// Won returns true once a tile reaches the configured target.
func (b *Board) Won() bool {
	return b.settings.Target > 0 && b.MaxTile() >= b.settings.Target
}
