package t2048

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/merge2048/internal/config"
)

func testSettings() config.Settings {
	cfg := config.DefaultSettings()
	cfg.Target = 0
	return cfg
}

// newTestBoard places rows[y][x] on an empty board; zeros are left empty.
func newTestBoard(t *testing.T, rows [][]int) *Board {
	t.Helper()
	cfg := testSettings()
	cfg.Grid.Height = len(rows)
	cfg.Grid.Width = len(rows[0])

	b := NewEmpty(cfg, WithSeed(1))
	for y, row := range rows {
		for x, v := range row {
			if v != 0 {
				b.Place(x, y, v)
			}
		}
	}
	return b
}

// settle advances the board in frame-sized steps until every tile rests.
func settle(t *testing.T, b *Board) {
	t.Helper()
	for range 100 {
		if b.IsSettled() {
			return
		}
		b.Advance(1.0 / 60)
	}
	require.True(t, b.IsSettled(), "board did not settle")
}

// moveAndSettle performs a move, reports the tile it spawned (if any) and
// lets all animations finish.
func moveAndSettle(t *testing.T, b *Board, dir Direction) (bool, *Tile) {
	t.Helper()
	moved := b.RequestMove(dir)

	var spawned *Tile
	for tile := range b.Tiles() {
		if _, ok := tile.Status.(Spawning); ok {
			require.Nil(t, spawned, "more than one tile spawned")
			tt := tile
			spawned = &tt
		}
	}

	settle(t, b)
	return moved, spawned
}

func collectTiles(b *Board) []Tile {
	var tiles []Tile
	for t := range b.Tiles() {
		tiles = append(tiles, t)
	}
	return tiles
}

func sumCells(cells [][]int) int {
	total := 0
	for _, row := range cells {
		for _, v := range row {
			total += v
		}
	}
	return total
}

func assertNoStackedStaticTiles(t *testing.T, b *Board) {
	t.Helper()
	seen := make(map[cell]TileID)
	for tile := range b.Tiles() {
		if _, ok := tile.Status.(Static); !ok {
			continue
		}
		c := cell{tile.X, tile.Y}
		if other, dup := seen[c]; dup {
			t.Fatalf("tiles %d and %d both rest at (%d, %d)", other, tile.ID, c.x, c.y)
		}
		seen[c] = tile.ID
	}
}

// referenceSlideLine is the array-based merge used as an oracle: slide
// toward index 0, merging each equal pair once.
func referenceSlideLine(line []int) ([]int, int) {
	result := make([]int, len(line))
	score := 0
	writePos := 0
	merged := false

	for _, v := range line {
		if v == 0 {
			continue
		}
		if writePos > 0 && !merged && result[writePos-1] == v {
			result[writePos-1] *= 2
			score += result[writePos-1]
			merged = true
			continue
		}
		result[writePos] = v
		writePos++
		merged = false
	}
	return result, score
}

func TestNewSeedsTwoTiles(t *testing.T) {
	b := New(testSettings(), WithSeed(3))

	assert.Equal(t, 2, b.TileCount())
	assert.Equal(t, 0, b.Score())
	assert.False(t, b.IsSettled(), "spawned tiles should animate")

	for tile := range b.Tiles() {
		assert.Contains(t, []int{2, 4}, tile.Value)
		assert.IsType(t, Spawning{}, tile.Status)
	}

	settle(t, b)
	assertNoStackedStaticTiles(t, b)
}

func TestScenarioMergeAcrossGap(t *testing.T) {
	b := newTestBoard(t, [][]int{
		{2, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	moved, spawned := moveAndSettle(t, b, DirLeft)
	require.True(t, moved)
	require.NotNil(t, spawned)

	tile, ok := b.TileAt(0, 0)
	require.True(t, ok)
	assert.Equal(t, 4, tile.Value)
	assert.Equal(t, Static{}, tile.Status)
	assert.Equal(t, 4, b.Score())
	assert.Equal(t, 1, b.Merges())

	// The merged tile plus the spawned one
	assert.Equal(t, 2, b.TileCount())
	assert.NotEqual(t, cell{0, 0}, cell{spawned.X, spawned.Y})
}

func TestScenarioNoTripleCollapse(t *testing.T) {
	b := newTestBoard(t, [][]int{
		{2, 2, 2, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	moved, spawned := moveAndSettle(t, b, DirLeft)
	require.True(t, moved)
	require.NotNil(t, spawned)

	cells := b.Snapshot().Cells
	cells[spawned.Y][spawned.X] = 0
	assert.Equal(t, []int{4, 4, 0, 0}, cells[0])
	assert.Equal(t, 8, b.Score())
}

func TestScenarioBlockedBoard(t *testing.T) {
	b := newTestBoard(t, [][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})
	before := collectTiles(b)

	for _, dir := range Directions {
		t.Run(dir.String(), func(t *testing.T) {
			assert.False(t, b.RequestMove(dir))
			assert.True(t, b.IsSettled())
			assert.Equal(t, before, collectTiles(b))
			assert.Equal(t, 0, b.Moves())
		})
	}
	assert.False(t, b.CanMove())
}

func TestScenarioMoveWhileAnimatingIgnored(t *testing.T) {
	b := newTestBoard(t, [][]int{
		{0, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 0, 0},
	})

	require.True(t, b.RequestMove(DirLeft))
	require.False(t, b.IsSettled())

	before := collectTiles(b)
	snap := b.Snapshot()

	assert.False(t, b.RequestMove(DirRight))
	assert.Equal(t, before, collectTiles(b))
	assert.Equal(t, snap, b.Snapshot())
}

func TestAdvanceZeroChangesNothing(t *testing.T) {
	b := newTestBoard(t, [][]int{
		{2, 0, 2, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	require.True(t, b.RequestMove(DirLeft))
	b.Advance(1.0 / 60)

	before := collectTiles(b)
	b.Advance(0)
	assert.Equal(t, before, collectTiles(b))
}

func TestAdvanceLargeStepIsIdempotent(t *testing.T) {
	b := newTestBoard(t, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	require.True(t, b.RequestMove(DirRight))

	// Moves finish and the merge materializes as Combining
	b.Advance(10)
	assert.False(t, b.IsSettled())
	assert.Equal(t, 4, b.Score())

	b.Advance(10)
	assert.True(t, b.IsSettled())
	settled := collectTiles(b)

	b.Advance(10)
	assert.Equal(t, settled, collectTiles(b))
	assert.Equal(t, 4, b.Score())
}

func TestSlideLineAllDirections(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		score    int
		moved    bool
	}{
		{"simple merge", []int{2, 2, 0, 0}, []int{4, 0, 0, 0}, 4, true},
		{"merge with trailing tile", []int{2, 2, 2, 0}, []int{4, 2, 0, 0}, 4, true},
		{"double merge", []int{2, 2, 2, 2}, []int{4, 4, 0, 0}, 8, true},
		{"two different pairs", []int{2, 2, 4, 4}, []int{4, 8, 0, 0}, 12, true},
		{"merge result does not cascade", []int{4, 2, 2, 0}, []int{4, 4, 0, 0}, 4, true},
		{"no merge possible", []int{2, 4, 8, 16}, []int{2, 4, 8, 16}, 0, false},
		{"slide with gap", []int{0, 0, 2, 2}, []int{4, 0, 0, 0}, 4, true},
		{"slide with multiple gaps", []int{2, 0, 0, 2}, []int{4, 0, 0, 0}, 4, true},
		{"no change needed", []int{4, 2, 0, 0}, []int{4, 2, 0, 0}, 0, false},
		{"empty line", []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, 0, false},
		{"single tile", []int{0, 4, 0, 0}, []int{4, 0, 0, 0}, 0, true},
		{"far pair behind blocker", []int{8, 0, 4, 4}, []int{8, 8, 0, 0}, 8, true},
	}

	for _, dir := range Directions {
		for _, tc := range tests {
			t.Run(dir.String()+"/"+tc.name, func(t *testing.T) {
				b := newTestBoard(t, [][]int{
					{0, 0, 0, 0},
					{0, 0, 0, 0},
					{0, 0, 0, 0},
					{0, 0, 0, 0},
				})
				line := b.lines(dir)[1]
				for i, v := range tc.input {
					if v != 0 {
						b.Place(line[i].x, line[i].y, v)
					}
				}

				moved, spawned := moveAndSettle(t, b, dir)
				require.Equal(t, tc.moved, moved)

				cells := b.Snapshot().Cells
				if moved {
					require.NotNil(t, spawned)
					cells[spawned.Y][spawned.X] = 0
				} else {
					require.Nil(t, spawned)
				}

				got := make([]int, len(line))
				for i, c := range line {
					got[i] = cells[c.y][c.x]
				}
				assert.Equal(t, tc.expected, got)
				assert.Equal(t, tc.score, b.Score())

				want, wantScore := referenceSlideLine(tc.input)
				assert.Equal(t, want, got, "reference disagrees")
				assert.Equal(t, wantScore, b.Score(), "reference score disagrees")
			})
		}
	}
}

func TestVerticalMoves(t *testing.T) {
	b := newTestBoard(t, [][]int{
		{2, 0, 0, 0},
		{2, 0, 0, 0},
		{4, 0, 0, 0},
		{4, 0, 0, 0},
	})

	moved, spawned := moveAndSettle(t, b, DirDown)
	require.True(t, moved)

	cells := b.Snapshot().Cells
	cells[spawned.Y][spawned.X] = 0
	column := []int{cells[0][0], cells[1][0], cells[2][0], cells[3][0]}
	assert.Equal(t, []int{0, 0, 4, 8}, column)
	assert.Equal(t, 12, b.Score())
}

func TestNonSquareBoard(t *testing.T) {
	b := newTestBoard(t, [][]int{
		{2, 0, 0, 0, 2, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 8},
	})
	assert.Equal(t, 6, b.Width())
	assert.Equal(t, 3, b.Height())

	moved, _ := moveAndSettle(t, b, DirRight)
	require.True(t, moved)

	tile, ok := b.TileAt(5, 0)
	require.True(t, ok)
	assert.Equal(t, 4, tile.Value)

	tile, ok = b.TileAt(5, 2)
	require.True(t, ok)
	assert.Equal(t, 8, tile.Value)
}

func TestPendingMergeDuringAnimation(t *testing.T) {
	b := newTestBoard(t, [][]int{
		{4, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	dstID := b.tileAt(0, 0).ID

	require.True(t, b.RequestMove(DirLeft))

	// Both parents and the spawned tile exist until settlement
	assert.Equal(t, 3, b.TileCount())
	tile, ok := b.TileAt(0, 0)
	require.True(t, ok)
	assert.Equal(t, dstID, tile.ID)
	assert.False(t, tile.Merging())
	assert.Equal(t, 0, b.Score())

	settle(t, b)
	assert.Equal(t, 2, b.TileCount())
	tile, _ = b.TileAt(0, 0)
	assert.Equal(t, 8, tile.Value)
	assert.NotEqual(t, dstID, tile.ID, "combined tile gets a fresh ID")
}

func TestRandomPlayInvariants(t *testing.T) {
	b := New(testSettings(), WithSeed(42))
	settle(t, b)
	rng := rand.New(rand.NewSource(7))

	for i := range 400 {
		before := b.Snapshot()
		dir := Directions[rng.Intn(len(Directions))]

		// Expected layout from the reference merge
		expected := make([][]int, len(before.Cells))
		for y := range before.Cells {
			expected[y] = append([]int(nil), before.Cells[y]...)
		}
		expectedGain := 0
		for _, line := range b.lines(dir) {
			values := make([]int, len(line))
			for j, c := range line {
				values[j] = before.Cells[c.y][c.x]
			}
			slid, gain := referenceSlideLine(values)
			expectedGain += gain
			for j, c := range line {
				expected[c.y][c.x] = slid[j]
			}
		}

		moved, spawned := moveAndSettle(t, b, dir)
		after := b.Snapshot()
		assertNoStackedStaticTiles(t, b)

		if !moved {
			require.Equal(t, before, after, "step %d: blocked move changed the board", i)
			continue
		}

		require.NotNil(t, spawned, "step %d", i)
		require.Equal(t, before.Score+expectedGain, after.Score, "step %d", i)
		require.Equal(t, sumCells(before.Cells)+spawned.Value, sumCells(after.Cells), "step %d", i)

		actual := after.Cells
		actual[spawned.Y][spawned.X] = 0
		require.Equal(t, expected, actual, "step %d dir %s", i, dir)

		if !b.CanMove() {
			b.Reset()
			settle(t, b)
		}
	}
}

func TestResetClearsBoard(t *testing.T) {
	b := newTestBoard(t, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	moveAndSettle(t, b, DirLeft)
	require.Equal(t, 4, b.Score())

	b.Reset()
	assert.Equal(t, 0, b.Score())
	assert.Equal(t, 0, b.Moves())
	assert.Equal(t, 0, b.Merges())
	assert.Equal(t, 2, b.TileCount())
}

func TestCanMoveAndWon(t *testing.T) {
	b := newTestBoard(t, [][]int{
		{2, 4},
		{4, 2},
	})
	assert.False(t, b.CanMove())

	b = newTestBoard(t, [][]int{
		{2, 2},
		{4, 8},
	})
	assert.True(t, b.CanMove())
	assert.False(t, b.Won(), "target disabled in test settings")

	cfg := testSettings()
	cfg.Target = 8
	b = NewEmpty(cfg, WithSeed(1))
	b.Place(1, 1, 8)
	assert.True(t, b.Won())
	assert.Equal(t, 8, b.MaxTile())
}

func TestContractViolationsPanic(t *testing.T) {
	b := newTestBoard(t, [][]int{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	assert.Panics(t, func() { b.TileAt(4, 0) })
	assert.Panics(t, func() { b.TileAt(0, -1) })
	assert.Panics(t, func() { b.Advance(-0.1) })
	assert.Panics(t, func() { b.Place(0, 0, 4) }, "occupied cell")
	assert.Panics(t, func() { b.Place(1, 0, 3) }, "not a power of two")
	assert.Panics(t, func() { b.RequestMove(Direction(9)) })

	cfg := testSettings()
	cfg.Grid.Width = 0
	assert.Panics(t, func() { NewEmpty(cfg) })
}

func TestTileAtEmptyCell(t *testing.T) {
	b := newTestBoard(t, [][]int{
		{2, 0},
		{0, 0},
	})
	_, ok := b.TileAt(1, 1)
	assert.False(t, ok)
}
