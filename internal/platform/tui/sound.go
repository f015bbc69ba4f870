package tui

import (
	"github.com/vovakirdan/rad-runner/internal/runner"
)

// bel is the terminal bell control character.
const bel = "\a"

// Bell is a runner.Sound that rings the terminal bell on collisions.
// Other cues are silent. Play only records the ring; the Model emits BEL
// with its next frame so the byte reaches the terminal through the
// Bubble Tea renderer.
type Bell struct {
	pending bool
}

// NewBell creates a silent bell.
func NewBell() *Bell {
	return &Bell{}
}

// Play implements runner.Sound.
func (b *Bell) Play(cue runner.Cue) {
	if cue == runner.CueCollision {
		b.pending = true
	}
}

// Take reports whether the bell rang since the last call and resets it.
// A nil Bell never rings.
func (b *Bell) Take() bool {
	if b == nil {
		return false
	}
	rang := b.pending
	b.pending = false
	return rang
}
