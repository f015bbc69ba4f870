package runner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rad-runner/internal/config"
	"github.com/vovakirdan/rad-runner/internal/core"
)

const (
	testW = 800
	testH = 400
)

type recordingSound struct {
	cues []Cue
}

func (s *recordingSound) Play(cue Cue) {
	s.cues = append(s.cues, cue)
}

func (s *recordingSound) count(cue Cue) int {
	n := 0
	for _, c := range s.cues {
		if c == cue {
			n++
		}
	}
	return n
}

type resizableViewport struct {
	w, h float64
}

func (v *resizableViewport) Size() (float64, float64) {
	return v.w, v.h
}

type harness struct {
	game  *Game
	draw  *core.DrawList
	clock *FrameClock
	sound *recordingSound
	view  *resizableViewport
}

// advance runs n scheduled ticks and fails if the clock runs dry.
func (h *harness) advance(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.True(t, h.clock.Advance(), "clock idle at tick %d", i)
	}
}

// untilGameOver ticks until the run ends, bounded by limit.
func (h *harness) untilGameOver(t *testing.T, limit int) {
	t.Helper()
	for i := 0; i < limit; i++ {
		if h.game.State().GameOver {
			return
		}
		require.True(t, h.clock.Advance())
	}
	require.True(t, h.game.State().GameOver, "no game over within %d ticks", limit)
}

func newHarness(t *testing.T, mutate func(*config.RunnerConfig)) *harness {
	t.Helper()
	cfg := config.DefaultRunnerConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	require.NoError(t, cfg.Validate())

	h := &harness{
		draw:  core.NewDrawList(),
		clock: NewFrameClock(),
		sound: &recordingSound{},
		view:  &resizableViewport{w: testW, h: testH},
	}
	h.game = New(cfg, Env{
		Renderer: h.draw,
		Sound:    h.sound,
		Clock:    h.clock,
		Viewport: h.view,
		Seed:     42,
	})
	return h
}

func noSpawns(cfg *config.RunnerConfig) {
	cfg.Obstacles.InitialInterval = 1_000_000
}
