package render

import (
	"testing"

	"github.com/vovakirdan/merge2048/internal/config"
	"github.com/vovakirdan/merge2048/internal/core"
	"github.com/vovakirdan/merge2048/internal/games/t2048"
)

func testPalette() Palette {
	return NewPalette(config.DefaultSettings().Colors)
}

func TestTileColor(t *testing.T) {
	pal := testPalette()

	tests := []struct {
		value    int
		expected core.Color
	}{
		{2, "#eee4da"},
		{4, "#ede0c8"},
		{8, "#f2b179"},
		{2048, "#edc22e"},
		{4096, pal.Unknown},
		{0, pal.Unknown},
	}

	for _, tc := range tests {
		if got := pal.TileColor(tc.value); got != tc.expected {
			t.Errorf("TileColor(%d) = %q, expected %q", tc.value, got, tc.expected)
		}
	}
}

func TestTextColor(t *testing.T) {
	pal := testPalette()

	if pal.TextColor(2) != pal.TextDark || pal.TextColor(4) != pal.TextDark {
		t.Error("small values should use the dark label colour")
	}
	if pal.TextColor(8) != pal.TextLight || pal.TextColor(1024) != pal.TextLight {
		t.Error("values from 8 up should use the light label colour")
	}
}

func TestTileRect(t *testing.T) {
	geo := t2048.Geometry{TileSize: 10, TilePadding: 2, BoardPadding: 1, BoardOffsetY: 0}
	cx, cy := geo.CellPos(1, 1)

	tests := []struct {
		name       string
		status     t2048.Status
		x, y, w, h float64
	}{
		{"static", t2048.Static{}, cx, cy, 10, 10},
		{"moving", t2048.Moving{Remaining: 0.1, X: 4, Y: 5}, 4, 5, 10, 10},
		{"spawning", t2048.Spawning{Remaining: 0.1, Size: 4}, cx + 3, cy + 3, 4, 4},
		{"combining", t2048.Combining{Remaining: 0.1, Size: 12}, cx - 1, cy - 1, 12, 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tile := t2048.Tile{Value: 2, X: 1, Y: 1, Status: tc.status}
			x, y, w, h := TileRect(tile, geo)
			if x != tc.x || y != tc.y || w != tc.w || h != tc.h {
				t.Errorf("TileRect() = (%v, %v, %v, %v), expected (%v, %v, %v, %v)",
					x, y, w, h, tc.x, tc.y, tc.w, tc.h)
			}
		})
	}
}

func TestScreenSinkMapsRows(t *testing.T) {
	screen := core.NewScreen(20, 10)
	sink := NewScreenSink(screen, 0.5)

	r := sink.Cells(3, 9, 6, 6)
	if r != core.NewRect(3, 5, 6, 3) {
		t.Errorf("Cells() = %+v, expected {3 5 6 3}", r)
	}

	sink.FillRect(3, 9, 6, 6, "#eee4da")
	if screen.GetCell(3, 5).Bg != "#eee4da" || screen.GetCell(8, 7).Bg != "#eee4da" {
		t.Error("FillRect should paint the mapped cells")
	}
	if screen.GetCell(9, 5).Bg != core.ColorDefault || screen.GetCell(3, 8).Bg != core.ColorDefault {
		t.Error("FillRect painted outside the mapped cells")
	}

	// Zero-size rectangles draw nothing
	sink.FillRect(12, 2, 0, 0, "#000000")
	if screen.GetCell(12, 1).Bg != core.ColorDefault {
		t.Error("empty rectangle should not paint")
	}
}

func TestScreenSinkDrawNumber(t *testing.T) {
	screen := core.NewScreen(20, 10)
	sink := NewScreenSink(screen, 0.5)

	sink.DrawNumber(2048, 10, 8, 6, "#f9f6f2")
	if got := screen.Row(4)[8:12]; got != "2048" {
		t.Errorf("label = %q, expected \"2048\"", got)
	}

	sink.DrawNumber(131072, 10, 12, 4, "#f9f6f2")
	if got := screen.Row(6)[8:12]; got != "128k" {
		t.Errorf("label = %q, expected \"128k\"", got)
	}
}

func TestBoardDrawsTilesOnScreen(t *testing.T) {
	cfg := config.DefaultSettings()
	b := t2048.NewEmpty(cfg, t2048.WithSeed(1))
	b.Place(0, 0, 2)
	b.Place(3, 3, 64)

	screen := core.NewScreen(60, 30)
	sink := NewScreenSink(screen, cfg.Geometry.RowScale)
	pal := NewPalette(cfg.Colors)
	Board(sink, b, pal)

	geo := b.Geometry()

	// Tile at (0, 0)
	px, py := geo.CellPos(0, 0)
	r := sink.Cells(px, py, geo.TileSize, geo.TileSize)
	if c := screen.GetCell(r.X, r.Y); c.Bg != pal.TileColor(2) {
		t.Errorf("cell (0, 0) background = %q, expected %q", c.Bg, pal.TileColor(2))
	}
	cx, cy := r.Center()
	if c := screen.GetCell(cx, cy); c.Rune != '2' || c.Fg != pal.TextDark {
		t.Errorf("label cell = %+v, expected dark '2'", c)
	}

	// Empty cell (1, 0)
	px, py = geo.CellPos(1, 0)
	r = sink.Cells(px, py, geo.TileSize, geo.TileSize)
	if c := screen.GetCell(r.X, r.Y); c.Bg != pal.Empty {
		t.Errorf("empty cell background = %q, expected %q", c.Bg, pal.Empty)
	}

	// Padding between cells shows the board colour
	if c := screen.GetCell(r.X-1, r.Y); c.Bg != pal.Board {
		t.Errorf("padding background = %q, expected %q", c.Bg, pal.Board)
	}

	// Tile at (3, 3)
	px, py = geo.CellPos(3, 3)
	r = sink.Cells(px, py, geo.TileSize, geo.TileSize)
	if c := screen.GetCell(r.X, r.Y); c.Bg != pal.TileColor(64) {
		t.Errorf("cell (3, 3) background = %q, expected %q", c.Bg, pal.TileColor(64))
	}
}

// recordingSink keeps the colour of every rectangle in draw order.
type recordingSink struct {
	fills []core.Color
}

func (r *recordingSink) FillRect(x, y, w, h float64, c core.Color) {
	r.fills = append(r.fills, c)
}

func (r *recordingSink) DrawNumber(n int, cx, cy, size float64, c core.Color) {}

func TestBoardDrawsMergingTilesLast(t *testing.T) {
	cfg := config.DefaultSettings()
	b := t2048.NewEmpty(cfg, t2048.WithSeed(1))
	b.Place(0, 0, 2)
	b.Place(3, 0, 2)
	b.Place(1, 1, 8)

	if !b.RequestMove(t2048.DirLeft) {
		t.Fatal("move left should be accepted")
	}
	b.Advance(0.05)

	merging := 0
	for tile := range b.Tiles() {
		if tile.Merging() {
			merging++
		}
	}
	if merging != 1 {
		t.Fatalf("expected 1 merging tile, got %d", merging)
	}

	pal := NewPalette(cfg.Colors)
	sink := &recordingSink{}
	Board(sink, b, pal)

	last := len(sink.fills) - 1
	if sink.fills[last] != pal.TileColor(2) {
		t.Errorf("last fill = %q, expected the merging tile colour %q", sink.fills[last], pal.TileColor(2))
	}
	if sink.fills[last-1] != pal.TileColor(8) {
		t.Errorf("fill before last = %q, expected the sliding 8 colour %q", sink.fills[last-1], pal.TileColor(8))
	}
}
