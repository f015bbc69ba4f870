package window

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/rad-runner/internal/runner"
)

// Audio is a runner.Sound playing synthesized clips. Every Play starts a
// new player, so overlapping cues mix instead of cutting each other off.
type Audio struct {
	ctx   *audio.Context
	clips map[runner.Cue][]byte
}

// NewAudio renders all cue clips up front. A context can only be created
// once per process, so callers pass it in.
func NewAudio(ctx *audio.Context) *Audio {
	clips := make(map[runner.Cue][]byte, len(cueTones))
	for cue, t := range cueTones {
		clips[cue] = synthesize(t)
	}
	return &Audio{ctx: ctx, clips: clips}
}

// Play implements runner.Sound.
func (a *Audio) Play(cue runner.Cue) {
	clip, ok := a.clips[cue]
	if !ok {
		return
	}
	a.ctx.NewPlayerFromBytes(clip).Play()
}
