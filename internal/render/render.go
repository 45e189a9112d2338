// Package render draws a board through a Sink: board background, empty
// cells, tiles with their animated position or size, and value labels.
package render

import (
	"math/bits"

	"github.com/vovakirdan/merge2048/internal/config"
	"github.com/vovakirdan/merge2048/internal/core"
	"github.com/vovakirdan/merge2048/internal/games/t2048"
)

// Sink is a drawing surface in geometry units.
type Sink interface {
	// FillRect draws a filled rectangle with top-left corner (x, y).
	FillRect(x, y, w, h float64, c core.Color)
	// DrawNumber draws n centered on (cx, cy) within a square of the given size.
	DrawNumber(n int, cx, cy, size float64, c core.Color)
}

// Palette holds the colours used to draw a board.
type Palette struct {
	Board     core.Color
	Empty     core.Color
	Tiles     []core.Color // Indexed by log2(value)
	Unknown   core.Color
	TextDark  core.Color
	TextLight core.Color
}

// NewPalette builds a Palette from colour settings.
func NewPalette(cfg config.ColorConfig) Palette {
	tiles := make([]core.Color, len(cfg.Tiles))
	for i, c := range cfg.Tiles {
		tiles[i] = core.Color(c)
	}
	return Palette{
		Board:     core.Color(cfg.Board),
		Empty:     core.Color(cfg.Empty),
		Tiles:     tiles,
		Unknown:   core.Color(cfg.Unknown),
		TextDark:  core.Color(cfg.TextDark),
		TextLight: core.Color(cfg.TextLight),
	}
}

// TileColor returns the fill colour for a tile value.
// Values beyond the table use the Unknown colour.
func (p Palette) TileColor(value int) core.Color {
	if value <= 0 {
		return p.Unknown
	}
	i := bits.Len(uint(value)) - 1
	if i > 0 && i < len(p.Tiles) {
		return p.Tiles[i]
	}
	return p.Unknown
}

// TextColor returns the label colour for a tile value.
func (p Palette) TextColor(value int) core.Color {
	if value >= 8 {
		return p.TextLight
	}
	return p.TextDark
}

// TileRect returns the rectangle a tile covers right now.
// Moving tiles use their interpolated corner; Spawning and Combining tiles
// are scaled around the center of their cell.
func TileRect(tile t2048.Tile, geo t2048.Geometry) (x, y, w, h float64) {
	x, y = geo.CellPos(tile.X, tile.Y)
	size := geo.TileSize

	switch s := tile.Status.(type) {
	case t2048.Moving:
		x, y = s.X, s.Y
	case t2048.Spawning:
		size = s.Size
	case t2048.Combining:
		size = s.Size
	}

	offset := (geo.TileSize - size) / 2
	return x + offset, y + offset, size, size
}

// Board draws the whole board.
func Board(dst Sink, b *t2048.Board, pal Palette) {
	geo := b.Geometry()

	w, h := geo.BoardSize(b.Width(), b.Height())
	dst.FillRect(geo.BoardPadding, geo.BoardPadding+geo.BoardOffsetY, w, h, pal.Board)

	for y := range b.Height() {
		for x := range b.Width() {
			px, py := geo.CellPos(x, y)
			dst.FillRect(px, py, geo.TileSize, geo.TileSize, pal.Empty)
		}
	}

	// Sliding tiles are drawn over resting ones, and tiles sliding onto a
	// merge partner over everything else.
	var moving, merging []t2048.Tile
	for tile := range b.Tiles() {
		switch {
		case tile.Merging():
			merging = append(merging, tile)
		case isMoving(tile):
			moving = append(moving, tile)
		default:
			drawTile(dst, tile, geo, pal)
		}
	}
	for _, tile := range moving {
		drawTile(dst, tile, geo, pal)
	}
	for _, tile := range merging {
		drawTile(dst, tile, geo, pal)
	}
}

func isMoving(tile t2048.Tile) bool {
	_, ok := tile.Status.(t2048.Moving)
	return ok
}

func drawTile(dst Sink, tile t2048.Tile, geo t2048.Geometry, pal Palette) {
	x, y, w, h := TileRect(tile, geo)
	dst.FillRect(x, y, w, h, pal.TileColor(tile.Value))

	cx := x + w/2
	cy := y + h/2
	dst.DrawNumber(tile.Value, cx, cy, geo.TileSize, pal.TextColor(tile.Value))
}
