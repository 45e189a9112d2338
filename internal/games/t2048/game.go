// Package t2048 implements the mechanics of the 2048 sliding-tile puzzle:
// grid state, directional slide/merge moves, per-tile animations, tile
// spawning and scoring. It knows nothing about rendering or input devices;
// a host drives it with Advance and RequestMove.
package t2048

import (
	"fmt"
	"io"
	"iter"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/merge2048/internal/config"
)

// TileID identifies a tile for its whole lifetime. IDs are never reused
// within a board.
type TileID uint64

// Tile is a single numbered tile.
// X and Y are the cell the tile occupies, or is sliding toward.
type Tile struct {
	ID     TileID
	Value  int
	X, Y   int
	Status Status

	mergeInto TileID // Merge partner this tile is sliding onto, 0 if none
}

// Merging reports whether the tile is sliding onto a merge partner and will
// be consumed when the board settles.
func (t Tile) Merging() bool {
	return t.mergeInto != 0
}

// Board owns the tiles, dimensions, score and settlement protocol.
// It is not safe for concurrent use; the host owns it exclusively.
type Board struct {
	settings config.Settings
	width    int
	height   int
	geo      Geometry

	tiles  []*Tile
	nextID TileID
	moves  int

	spawner *Spawner
	score   ScoreTracker
	logger  *log.Logger
}

// Option configures a Board.
type Option func(*Board)

// WithRand sets the random source used for spawning.
func WithRand(rng *rand.Rand) Option {
	return func(b *Board) {
		b.spawner = NewSpawner(rng, b.settings.Spawn.FourProbability)
	}
}

// WithSeed seeds the random source used for spawning.
// A zero seed means use the current time.
func WithSeed(seed int64) Option {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithLogger sets the logger for move, merge and spawn events.
func WithLogger(logger *log.Logger) Option {
	return func(b *Board) {
		b.logger = logger
	}
}

// New creates a board seeded with two spawned tiles.
// Panics if settings do not validate.
func New(settings config.Settings, opts ...Option) *Board {
	b := NewEmpty(settings, opts...)
	b.spawnTile()
	b.spawnTile()
	return b
}

// NewEmpty creates a board without any tiles.
// Panics if settings do not validate.
func NewEmpty(settings config.Settings, opts ...Option) *Board {
	if err := settings.Validate(); err != nil {
		panic(fmt.Sprintf("t2048: %v", err))
	}

	b := &Board{
		settings: settings,
		width:    settings.Grid.Width,
		height:   settings.Grid.Height,
		geo:      NewGeometry(settings.Geometry),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.spawner == nil {
		WithSeed(0)(b)
	}
	return b
}

// Reset discards every tile and the score, then seeds two new tiles.
func (b *Board) Reset() {
	b.tiles = nil
	b.moves = 0
	b.score = ScoreTracker{}
	b.spawnTile()
	b.spawnTile()
	b.logger.Debug("board reset", "width", b.width, "height", b.height)
}

// Width returns the board width in cells.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height in cells.
func (b *Board) Height() int {
	return b.height
}

// Geometry returns the layout used for animation positions.
func (b *Board) Geometry() Geometry {
	return b.geo
}

// Score returns the accumulated score.
func (b *Board) Score() int {
	return b.score.Points()
}

// Merges returns the number of merges since the last reset.
func (b *Board) Merges() int {
	return b.score.Merges()
}

// Moves returns the number of accepted moves since the last reset.
func (b *Board) Moves() int {
	return b.moves
}

// TileCount returns the number of tiles, including merge partners that have
// not settled yet.
func (b *Board) TileCount() int {
	return len(b.tiles)
}

// Tiles iterates over all tiles for rendering. Order carries no meaning.
func (b *Board) Tiles() iter.Seq[Tile] {
	return func(yield func(Tile) bool) {
		for _, t := range b.tiles {
			if !yield(*t) {
				return
			}
		}
	}
}

// TileAt returns the tile at (x, y).
// While a merge is pending the destination tile is returned, not the tile
// sliding onto it. Panics if (x, y) is outside the board.
func (b *Board) TileAt(x, y int) (Tile, bool) {
	b.mustContain(x, y)
	if t := b.tileAt(x, y); t != nil {
		return *t, true
	}
	return Tile{}, false
}

// Occupied reports whether any tile, animating or not, sits at (x, y).
func (b *Board) Occupied(x, y int) bool {
	return b.tileAt(x, y) != nil
}

// Place adds a Static tile at (x, y) and returns its ID.
// Panics if the cell is outside the board or occupied, or if value is not a
// power of two of at least 2.
func (b *Board) Place(x, y, value int) TileID {
	b.mustContain(x, y)
	if value < 2 || value&(value-1) != 0 {
		panic(fmt.Sprintf("t2048: tile value %d is not a power of two >= 2", value))
	}
	if b.Occupied(x, y) {
		panic(fmt.Sprintf("t2048: cell (%d, %d) is occupied", x, y))
	}

	t := b.newTile(value, x, y, Static{})
	b.tiles = append(b.tiles, t)
	return t.ID
}

// IsSettled returns true if every tile is Static.
func (b *Board) IsSettled() bool {
	for _, t := range b.tiles {
		if _, ok := t.Status.(Static); !ok {
			return false
		}
	}
	return true
}

// Advance ticks every tile by dt seconds. When the board becomes settled
// during this call, pending merges are applied.
// Panics if dt is negative.
func (b *Board) Advance(dt float64) {
	if dt < 0 {
		panic(fmt.Sprintf("t2048: negative time step %v", dt))
	}

	wasSettled := b.IsSettled()
	for _, t := range b.tiles {
		t.tick(dt, b.geo)
	}

	if !wasSettled && b.IsSettled() {
		b.settle()
	}
}

// RequestMove pushes all tiles toward dir.
// The move is dropped if the board is still animating. A tile is spawned
// only if at least one tile moved or merged. Returns whether the move
// changed the board.
func (b *Board) RequestMove(dir Direction) bool {
	if !b.IsSettled() {
		b.logger.Debug("move ignored while animating", "dir", dir)
		return false
	}

	if !b.slide(dir) {
		b.logger.Debug("move blocked", "dir", dir)
		return false
	}

	b.moves++
	b.spawnTile()
	b.logger.Debug("move accepted", "dir", dir, "moves", b.moves)
	return true
}

// settle replaces every merge pair with its combined tile in one step.
func (b *Board) settle() {
	consumed := make(map[TileID]bool)
	var combined []*Tile

	for _, src := range b.tiles {
		if src.mergeInto == 0 {
			continue
		}
		dst := b.tileByID(src.mergeInto)
		if dst == nil {
			panic(fmt.Sprintf("t2048: merge partner %d of tile %d is missing", src.mergeInto, src.ID))
		}

		value := src.Value + dst.Value
		c := b.newTile(value, dst.X, dst.Y, Combining{
			Remaining: b.settings.Animation.CombineTime,
			Size:      b.settings.Animation.CombineScale * b.geo.TileSize,
		})
		combined = append(combined, c)
		consumed[src.ID] = true
		consumed[dst.ID] = true

		b.score.Record(MergeEvent{Value: value, X: dst.X, Y: dst.Y})
	}

	if len(combined) == 0 {
		return
	}

	tiles := make([]*Tile, 0, len(b.tiles)-len(consumed)+len(combined))
	for _, t := range b.tiles {
		if !consumed[t.ID] {
			tiles = append(tiles, t)
		}
	}
	b.tiles = append(tiles, combined...)

	b.logger.Debug("board settled", "merges", len(combined), "score", b.score.Points())
}

// spawnTile adds one Spawning tile in a random empty cell.
func (b *Board) spawnTile() bool {
	x, y, value, ok := b.spawner.Pick(b)
	if !ok {
		return false
	}

	b.tiles = append(b.tiles, b.newTile(value, x, y, Spawning{
		Remaining: b.settings.Animation.NewTime,
		Size:      0,
	}))
	b.logger.Debug("tile spawned", "value", value, "x", x, "y", y)
	return true
}

func (b *Board) newTile(value, x, y int, status Status) *Tile {
	b.nextID++
	return &Tile{ID: b.nextID, Value: value, X: x, Y: y, Status: status}
}

// tileAt returns the tile at (x, y), preferring a merge destination over
// the tile sliding onto it.
func (b *Board) tileAt(x, y int) *Tile {
	var found *Tile
	for _, t := range b.tiles {
		if t.X != x || t.Y != y {
			continue
		}
		if t.mergeInto == 0 {
			return t
		}
		found = t
	}
	return found
}

func (b *Board) tileByID(id TileID) *Tile {
	for _, t := range b.tiles {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (b *Board) mustContain(x, y int) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		panic(fmt.Sprintf("t2048: cell (%d, %d) outside %dx%d board", x, y, b.width, b.height))
	}
}
