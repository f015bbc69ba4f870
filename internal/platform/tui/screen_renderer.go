package tui

import (
	"math"

	"github.com/vovakirdan/rad-runner/internal/core"
)

// Default cell size in viewport units. Terminal cells are roughly twice
// as tall as they are wide.
const (
	DefaultUnitsPerCol = 8
	DefaultUnitsPerRow = 16
)

// fillRune is drawn for every cell a rectangle covers.
const fillRune = '█'

// ScreenRenderer draws runner frames into a terminal cell buffer.
// It is also the runner's Viewport: the playfield is exactly as large as
// the screen, measured in viewport units.
type ScreenRenderer struct {
	screen      *core.Screen
	UnitsPerCol float64
	UnitsPerRow float64
}

// NewScreenRenderer creates a renderer over a cols x rows screen.
func NewScreenRenderer(cols, rows int) *ScreenRenderer {
	return &ScreenRenderer{
		screen:      core.NewScreen(core.Max(cols, 1), core.Max(rows, 1)),
		UnitsPerCol: DefaultUnitsPerCol,
		UnitsPerRow: DefaultUnitsPerRow,
	}
}

// Screen returns the underlying cell buffer.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// Resize changes the screen size, preserving the current contents.
func (r *ScreenRenderer) Resize(cols, rows int) {
	r.screen.Resize(core.Max(cols, 1), core.Max(rows, 1))
}

// Size implements runner.Viewport.
func (r *ScreenRenderer) Size() (w, h float64) {
	return float64(r.screen.Width()) * r.UnitsPerCol, float64(r.screen.Height()) * r.UnitsPerRow
}

// Clear implements runner.Renderer.
func (r *ScreenRenderer) Clear() {
	r.screen.Clear()
}

// FillRect implements runner.Renderer. Every cell the rectangle touches is filled.
func (r *ScreenRenderer) FillRect(rect core.Rect, c core.Color) {
	x0, y0, x1, y1 := rect.Cells(r.UnitsPerCol, r.UnitsPerRow)
	r.screen.FillCells(x0, y0, x1, y1, fillRune, c)
}

// DrawText implements runner.Renderer. The text is placed on the row that
// holds its baseline; size is ignored since a terminal has one font size.
func (r *ScreenRenderer) DrawText(text string, x, y float64, style core.TextStyle) {
	col := int(math.Floor(x / r.UnitsPerCol))
	row := int(math.Floor(y / r.UnitsPerRow))
	if style.Align == core.AlignCenter {
		col -= len([]rune(text)) / 2
	}
	r.screen.DrawTextColor(core.Max(col, 0), row, text, style.Color)
}
