package window

import (
	"encoding/binary"
	"testing"

	"github.com/vovakirdan/rad-runner/internal/core"
	"github.com/vovakirdan/rad-runner/internal/runner"
)

func TestSynthesizeLength(t *testing.T) {
	clip := synthesize(tone{From: 440, To: 440, Duration: 0.5, Volume: 1})

	if want := SampleRate / 2 * 4; len(clip) != want {
		t.Errorf("len = %d, want %d", len(clip), want)
	}
}

func TestSynthesizeStereoAndBounded(t *testing.T) {
	clip := synthesize(tone{From: 300, To: 100, Duration: 0.1, Volume: 0.5})

	nonZero := false
	for i := 0; i+4 <= len(clip); i += 4 {
		left := int16(binary.LittleEndian.Uint16(clip[i:]))
		right := int16(binary.LittleEndian.Uint16(clip[i+2:]))
		if left != right {
			t.Fatalf("frame %d: left %d != right %d", i/4, left, right)
		}
		if left > 16384 || left < -16384 {
			t.Fatalf("frame %d: sample %d exceeds volume", i/4, left)
		}
		if left != 0 {
			nonZero = true
		}
	}
	if !nonZero {
		t.Error("clip is silent")
	}
}

func TestCueTonesCoverAllCues(t *testing.T) {
	for _, cue := range []runner.Cue{runner.CueJump, runner.CueCollision, runner.CuePowerUp} {
		if _, ok := cueTones[cue]; !ok {
			t.Errorf("no tone for cue %q", cue)
		}
	}
}

func TestPaletteFallback(t *testing.T) {
	if got, want := rgba(core.ColorGray + 1), palette[core.ColorDefault]; got != want {
		t.Errorf("rgba(unknown) = %v, want %v", got, want)
	}
	if rgba(core.ColorRed) == rgba(core.ColorBlue) {
		t.Error("red and blue map to the same color")
	}
}
