// Package window runs the runner in a desktop or browser window using Ebiten.
package window

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/rad-runner/internal/config"
	"github.com/vovakirdan/rad-runner/internal/core"
	"github.com/vovakirdan/rad-runner/internal/runner"
)

// basicfont.Face7x13 is 13 pixels tall; text is scaled from that.
const baseFontSize = 13

var primaryKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyEnter}

// Options configures a window Game.
type Options struct {
	Width, Height int
	Seed          int64
	Runner        config.RunnerConfig
	Sound         runner.Sound // nil plays nothing
	Logger        *log.Logger  // nil discards
}

// viewport tracks the window's logical size. Layout updates it.
type viewport struct {
	w, h float64
}

func (v *viewport) Size() (float64, float64) {
	return v.w, v.h
}

// Game implements ebiten.Game around a runner.Game. The runner draws into
// a display list during Update, and Draw replays the latest frame.
type Game struct {
	game    *runner.Game
	clock   *runner.FrameClock
	frame   *core.DrawList
	view    *viewport
	face    *text.GoXFace
	touches []ebiten.TouchID
}

// New creates the window game and draws the instructions screen.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		clock: runner.NewFrameClock(),
		frame: core.NewDrawList(),
		view:  &viewport{w: float64(opts.Width), h: float64(opts.Height)},
		face:  text.NewGoXFace(basicfont.Face7x13),
	}
	g.game = runner.New(opts.Runner, runner.Env{
		Renderer: g.frame,
		Sound:    opts.Sound,
		Clock:    g.clock,
		Viewport: g.view,
		Logger:   logger,
		Seed:     opts.Seed,
	})
	g.game.ShowInstructions()
	return g
}

// Update reads input and runs the scheduled frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.primaryPressed() {
		g.game.Primary()
	}
	g.clock.Advance()
	return nil
}

// primaryPressed reports a key press, left click or new touch this frame.
func (g *Game) primaryPressed() bool {
	for _, k := range primaryKeys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	return len(g.touches) > 0
}

// Draw replays the most recent runner frame.
func (g *Game) Draw(screen *ebiten.Image) {
	for _, cmd := range g.frame.Commands() {
		switch cmd.Kind {
		case core.CmdClear:
			screen.Fill(background)
		case core.CmdFillRect:
			r := cmd.Rect
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(cmd.Color), false)
		case core.CmdText:
			g.drawText(screen, cmd)
		}
	}
}

// drawText draws a text command with its baseline at cmd.Y.
func (g *Game) drawText(screen *ebiten.Image, cmd core.Command) {
	scale := 1.0
	if cmd.Style.Size > 0 {
		scale = cmd.Style.Size / baseFontSize
	}

	op := &text.DrawOptions{}
	if cmd.Style.Align == core.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cmd.X, cmd.Y-g.face.Metrics().HAscent*scale)
	op.ColorScale.ScaleWithColor(rgba(cmd.Style.Color))
	text.Draw(screen, cmd.Text, g.face, op)
}

// Layout makes the logical screen match the window, so resizing the window
// resizes the playfield.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w != g.view.w || h != g.view.h {
		g.view.w, g.view.h = w, h
		if !g.game.State().Started {
			g.game.ShowInstructions()
		}
	}
	return outsideWidth, outsideHeight
}

// Runner returns the hosted game.
func (g *Game) Runner() *runner.Game {
	return g.game
}
