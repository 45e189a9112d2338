package t2048

import "github.com/vovakirdan/merge2048/internal/config"

// Status is the animation state of a tile: Static, Spawning, Moving or
// Combining. Dispatch with a type switch.
type Status interface {
	isStatus()
}

// Static is the terminal resting state.
type Static struct{}

// Spawning grows a new tile from nothing to full size.
type Spawning struct {
	Remaining float64 // Seconds left
	Size      float64 // Current edge length in geometry units
}

// Moving slides a tile from its origin to the cell it now occupies.
type Moving struct {
	Remaining float64
	X, Y      float64 // Current top-left corner in geometry units
	OriginX   int     // Cell the tile left, before any chained moves
	OriginY   int
}

// Combining settles a freshly merged tile from its enlarged size back to
// full size.
type Combining struct {
	Remaining float64
	Size      float64
}

func (Static) isStatus()    {}
func (Spawning) isStatus()  {}
func (Moving) isStatus()    {}
func (Combining) isStatus() {}

// tick advances the tile's animation by dt seconds.
// The interpolation factor is recomputed every tick from the time left, so
// the curve depends on the frame rate like a first-order filter.
func (t *Tile) tick(dt float64, geo Geometry) {
	switch s := t.Status.(type) {
	case Spawning:
		if s.Remaining <= dt {
			t.Status = Static{}
			return
		}
		factor := dt / s.Remaining
		t.Status = Spawning{
			Remaining: s.Remaining - dt,
			Size:      s.Size + factor*(geo.TileSize-s.Size),
		}

	case Moving:
		if s.Remaining <= dt {
			t.Status = Static{}
			return
		}
		tx, ty := geo.CellPos(t.X, t.Y)
		factor := dt / s.Remaining
		t.Status = Moving{
			Remaining: s.Remaining - dt,
			X:         s.X + factor*(tx-s.X),
			Y:         s.Y + factor*(ty-s.Y),
			OriginX:   s.OriginX,
			OriginY:   s.OriginY,
		}

	case Combining:
		if s.Remaining <= dt {
			t.Status = Static{}
			return
		}
		factor := dt / s.Remaining
		t.Status = Combining{
			Remaining: s.Remaining - dt,
			Size:      s.Size + factor*(geo.TileSize-s.Size),
		}
	}
}

// startMoving sends the tile to cell (x, y) with a fresh Moving animation.
// A tile that is already moving restarts from its original origin cell.
func (t *Tile) startMoving(x, y int, moveTime float64, geo Geometry) {
	switch s := t.Status.(type) {
	case Static:
		px, py := geo.CellPos(t.X, t.Y)
		t.Status = Moving{Remaining: moveTime, X: px, Y: py, OriginX: t.X, OriginY: t.Y}
	case Moving:
		px, py := geo.CellPos(s.OriginX, s.OriginY)
		t.Status = Moving{Remaining: moveTime, X: px, Y: py, OriginX: s.OriginX, OriginY: s.OriginY}
	}
	t.X = x
	t.Y = y
}

// Geometry converts cell coordinates into renderer units.
type Geometry struct {
	TileSize     float64
	TilePadding  float64
	BoardPadding float64
	BoardOffsetY float64
}

// NewGeometry builds a Geometry from layout settings.
func NewGeometry(cfg config.GeometryConfig) Geometry {
	return Geometry{
		TileSize:     cfg.TileSize,
		TilePadding:  cfg.TilePadding,
		BoardPadding: cfg.BoardPadding,
		BoardOffsetY: cfg.BoardOffsetY,
	}
}

// CellPos returns the top-left corner of cell (x, y).
func (g Geometry) CellPos(x, y int) (float64, float64) {
	px := g.BoardPadding + float64(x)*g.TileSize + float64(x+1)*g.TilePadding
	py := g.BoardPadding + g.BoardOffsetY + float64(y)*g.TileSize + float64(y+1)*g.TilePadding
	return px, py
}

// BoardSize returns the extent of a width x height board including padding
// between and around the cells.
func (g Geometry) BoardSize(width, height int) (float64, float64) {
	w := g.TileSize*float64(width) + g.TilePadding*float64(width+1)
	h := g.TileSize*float64(height) + g.TilePadding*float64(height+1)
	return w, h
}
