package render

import (
	"math"
	"strconv"

	"github.com/vovakirdan/merge2048/internal/core"
)

// ScreenSink draws into a terminal screen buffer. One geometry unit is one
// column; vertical units are multiplied by rowScale because terminal cells
// are taller than they are wide.
type ScreenSink struct {
	screen   *core.Screen
	rowScale float64
}

// NewScreenSink creates a sink over screen.
func NewScreenSink(screen *core.Screen, rowScale float64) *ScreenSink {
	return &ScreenSink{screen: screen, rowScale: rowScale}
}

// FillRect implements Sink.
func (s *ScreenSink) FillRect(x, y, w, h float64, c core.Color) {
	r := s.toRect(x, y, w, h)
	if r.Empty() {
		return
	}
	s.screen.FillRect(r, c)
}

// DrawNumber implements Sink.
func (s *ScreenSink) DrawNumber(n int, cx, cy, size float64, c core.Color) {
	text := strconv.Itoa(n)
	if len(text) > int(size) && n >= 1024 {
		// Abbreviate so the label stays inside the tile: 16384 -> 16k
		text = strconv.Itoa(n/1024) + "k"
	}

	col := int(math.Round(cx)) - len(text)/2
	row := int(math.Floor(cy * s.rowScale))
	s.screen.DrawTextColored(col, row, text, c)
}

// toRect converts geometry units to screen cells.
func (s *ScreenSink) toRect(x, y, w, h float64) core.Rect {
	x0 := int(math.Round(x))
	x1 := int(math.Round(x + w))
	y0 := int(math.Round(y * s.rowScale))
	y1 := int(math.Round((y + h) * s.rowScale))
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Cells returns the screen rectangle a geometry rectangle maps to.
func (s *ScreenSink) Cells(x, y, w, h float64) core.Rect {
	return s.toRect(x, y, w, h)
}
