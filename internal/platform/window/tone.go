package window

import (
	"encoding/binary"
	"math"

	"github.com/vovakirdan/rad-runner/internal/runner"
)

// SampleRate is the rate the audio context must be created with.
// Clips are 16-bit little endian stereo.
const SampleRate = 44100

// tone is a sine sweep from From to To Hz with an exponential decay.
type tone struct {
	From, To float64
	Duration float64 // Seconds
	Volume   float64 // 0..1
}

var cueTones = map[runner.Cue]tone{
	runner.CueJump:      {From: 420, To: 840, Duration: 0.12, Volume: 0.35},
	runner.CueCollision: {From: 180, To: 55, Duration: 0.45, Volume: 0.6},
	runner.CuePowerUp:   {From: 660, To: 1320, Duration: 0.25, Volume: 0.4},
}

// synthesize renders t as PCM ready for audio.Context.NewPlayerFromBytes.
func synthesize(t tone) []byte {
	frames := int(float64(SampleRate) * t.Duration)
	data := make([]byte, frames*4)

	phase := 0.0
	for i := 0; i < frames; i++ {
		progress := float64(i) / float64(frames)
		freq := t.From + (t.To-t.From)*progress
		env := math.Exp(-3 * progress)
		sample := int16(math.Sin(phase) * env * t.Volume * math.MaxInt16)
		phase += 2 * math.Pi * freq / SampleRate

		binary.LittleEndian.PutUint16(data[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(data[i*4+2:], uint16(sample))
	}
	return data
}
