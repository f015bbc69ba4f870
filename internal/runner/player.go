package runner

import (
	"github.com/vovakirdan/rad-runner/internal/config"
	"github.com/vovakirdan/rad-runner/internal/core"
)

// Player is the jumping rectangle. X never changes.
type Player struct {
	X, Y          float64
	Width, Height float64
	DY            float64 // Vertical velocity, negative = up
	Speed         float64 // Horizontal speed (informational)
	Gravity       float64
	JumpImpulse   float64
	Jumping       bool
	Color         core.Color
}

// newPlayer places a player StartOffset units above the bottom of the viewport.
func newPlayer(cfg config.RunnerConfig, viewportH float64) Player {
	color, _ := core.ParseColor(cfg.Player.Color)
	return Player{
		X:           cfg.Player.X,
		Y:           viewportH - cfg.Player.StartOffset,
		Width:       cfg.Player.Width,
		Height:      cfg.Player.Height,
		Speed:       cfg.Player.Speed,
		Gravity:     cfg.Physics.Gravity,
		JumpImpulse: cfg.Physics.JumpImpulse,
		Color:       color,
	}
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// GroundY returns the lowest Y the player can have in a viewport of height h.
func (p Player) GroundY(h float64) float64 {
	return h - p.Height
}

// fall integrates one tick of gravity and clamps the player to the ground.
func (p *Player) fall(viewportH float64) {
	p.DY += p.Gravity
	p.Y += p.DY

	if ground := p.GroundY(viewportH); p.Y > ground {
		p.Y = ground
		p.DY = 0
		p.Jumping = false
	}
}

// jump applies the jump impulse unless the player is already airborne.
func (p *Player) jump() bool {
	if p.Jumping {
		return false
	}
	p.DY = p.JumpImpulse
	p.Jumping = true
	return true
}
