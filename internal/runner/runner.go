// Package runner implements the endless runner simulation: a player rectangle
// jumps over obstacles scrolling in from the right until it hits one.
//
// A Game owns all session state and reaches its environment only through
// small capabilities (Renderer, Sound, Scheduler, Viewport), so the same loop
// runs in a terminal, a window or a headless simulator.
package runner

import "github.com/vovakirdan/rad-runner/internal/core"

// Renderer is the drawing surface a Game renders to.
// Calls are assumed to always succeed.
type Renderer interface {
	Clear()
	FillRect(r core.Rect, c core.Color)
	DrawText(text string, x, y float64, style core.TextStyle)
}

// Cue names a sound effect.
type Cue string

const (
	CueJump      Cue = "jump"
	CueCollision Cue = "collision"
	CuePowerUp   Cue = "powerup" // declared for sound backends, never played
)

// Sound plays cues fire-and-forget. Failures stay inside the implementation.
type Sound interface {
	Play(cue Cue)
}

// Scheduler delivers one handler invocation per display frame.
// A Game keeps at most one tick pending at a time.
type Scheduler interface {
	RequestNextTick(handler func())
}

// Viewport reports the current playfield size in viewport units.
// It is read at tick time, so resizes take effect on the next frame.
type Viewport interface {
	Size() (w, h float64)
}

// FixedViewport is a Viewport of constant size.
type FixedViewport struct {
	W, H float64
}

// Size implements Viewport.
func (v FixedViewport) Size() (float64, float64) {
	return v.W, v.H
}

// silence is the Sound used when none is configured.
type silence struct{}

func (silence) Play(Cue) {}
