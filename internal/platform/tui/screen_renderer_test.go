package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/rad-runner/internal/core"
)

func TestScreenRendererSize(t *testing.T) {
	r := NewScreenRenderer(80, 23)

	w, h := r.Size()
	if w != 640 || h != 368 {
		t.Errorf("Size() = (%v, %v), want (640, 368)", w, h)
	}

	r.Resize(100, 30)
	w, h = r.Size()
	if w != 800 || h != 480 {
		t.Errorf("Size() after resize = (%v, %v), want (800, 480)", w, h)
	}
}

func TestScreenRendererFillRect(t *testing.T) {
	tests := []struct {
		name           string
		rect           core.Rect
		wantX0, wantX1 int // covered columns [x0, x1)
		wantY0, wantY1 int // covered rows [y0, y1)
	}{
		{"aligned", core.NewRect(16, 32, 16, 32), 2, 4, 2, 4},
		{"partial cells", core.NewRect(50, 350, 50, 50), 6, 13, 21, 25},
		{"clipped right", core.NewRect(150, 0, 100, 16), 18, 20, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewScreenRenderer(20, 25)
			r.FillRect(tt.rect, core.ColorRed)
			s := r.Screen()

			for y := 0; y < s.Height(); y++ {
				for x := 0; x < s.Width(); x++ {
					inside := x >= tt.wantX0 && x < tt.wantX1 && y >= tt.wantY0 && y < tt.wantY1
					cell := s.GetCell(x, y)
					if inside && (cell.Rune != fillRune || cell.Color != core.ColorRed) {
						t.Errorf("cell (%d,%d) = %q/%v, want filled", x, y, cell.Rune, cell.Color)
					}
					if !inside && cell.Rune != ' ' {
						t.Errorf("cell (%d,%d) = %q, want blank", x, y, cell.Rune)
					}
				}
			}
		})
	}
}

func TestScreenRendererDrawText(t *testing.T) {
	r := NewScreenRenderer(40, 10)

	r.DrawText("Score: 3", 10, 30, core.TextStyle{Size: 20})
	if got := r.Screen().Row(1); !strings.HasPrefix(got, " Score: 3") {
		t.Errorf("left aligned row = %q", got)
	}

	r.DrawText("Game Over", 160, 80, core.TextStyle{Size: 30, Align: core.AlignCenter})
	row := r.Screen().Row(5)
	if got := strings.Index(row, "Game Over"); got != 16 {
		t.Errorf("centered text starts at column %d, want 16", got)
	}

	r.Clear()
	if got := strings.TrimSpace(r.Screen().String()); got != "" {
		t.Errorf("screen after Clear = %q, want blank", got)
	}
}

func TestScreenRendererTextColor(t *testing.T) {
	r := NewScreenRenderer(20, 2)
	r.DrawText("hi", 0, 0, core.TextStyle{Color: core.ColorCyan})

	if c := r.Screen().GetCell(1, 0); c.Rune != 'i' || c.Color != core.ColorCyan {
		t.Errorf("cell (1,0) = %q/%v, want 'i'/cyan", c.Rune, c.Color)
	}
}
