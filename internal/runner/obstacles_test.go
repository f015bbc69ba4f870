package runner

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rad-runner/internal/config"
	"github.com/vovakirdan/rad-runner/internal/core"
)

func newTestField(t *testing.T, seed int64) *ObstacleField {
	t.Helper()
	return NewObstacleField(config.DefaultRunnerConfig().Obstacles, rand.New(rand.NewSource(seed)))
}

func TestObstacleFieldSpawnIntervals(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 1234} {
		f := newTestField(t, seed)

		var observed []int
		since := 0
		for f.Spawned() < 300 {
			since++
			if f.tick(testW, testH) {
				observed = append(observed, since)
				since = 0
				assert.GreaterOrEqual(t, f.Interval(), 50)
				assert.LessOrEqual(t, f.Interval(), 150)
			}
		}

		require.Len(t, observed, 300)
		assert.Equal(t, 100, observed[0], "first spawn uses the initial interval")
		for i, gap := range observed[1:] {
			assert.GreaterOrEqual(t, gap, 50, "seed %d spawn %d", seed, i+1)
			assert.LessOrEqual(t, gap, 150, "seed %d spawn %d", seed, i+1)
		}
	}
}

func TestObstacleFieldSpawnPlacement(t *testing.T) {
	f := newTestField(t, 3)
	names := map[string]bool{}
	for _, a := range config.DefaultRunnerConfig().Obstacles.Archetypes {
		names[a.Name] = true
	}

	for f.Spawned() < 50 {
		f.tick(testW, testH)
	}

	require.Equal(t, 50, f.Len())
	for _, o := range f.Obstacles() {
		assert.Equal(t, float64(testW), o.X)
		assert.Equal(t, testH-o.Height, o.Y)
		assert.True(t, names[o.Archetype], "unknown archetype %q", o.Archetype)
	}
}

func TestObstacleFieldAdvanceIsConstant(t *testing.T) {
	f := newTestField(t, 99)
	speed := config.DefaultRunnerConfig().Obstacles.Speed

	for tick := 0; tick < 3000; tick++ {
		before := f.Obstacles()
		spawnedBefore := f.Spawned()

		f.tick(testW, testH)
		f.advance()
		f.prune()

		want := make([]Obstacle, 0, len(before)+1)
		for _, o := range before {
			o.X -= speed
			if o.X+o.Width >= 0 {
				want = append(want, o)
			}
		}

		got := f.Obstacles()
		if f.Spawned() > spawnedBefore {
			require.NotEmpty(t, got)
			last := got[len(got)-1]
			assert.Equal(t, testW-speed, last.X)
			got = got[:len(got)-1]
		}
		require.Equal(t, want, got, "tick %d", tick)
	}
}

func TestObstacleFieldPruneConsecutiveExpired(t *testing.T) {
	f := newTestField(t, 1)
	f.obstacles = append(f.obstacles,
		Obstacle{X: -29, Width: 30, Archetype: "a"}, // X+W = 1, then -2
		Obstacle{X: -39, Width: 40, Archetype: "b"}, // X+W = 1, then -2
		Obstacle{X: -27, Width: 30, Archetype: "c"}, // X+W = 3, then 0
		Obstacle{X: 200, Width: 30, Archetype: "d"},
	)

	f.advance()
	removed := f.prune()

	assert.Equal(t, 2, removed)
	require.Equal(t, 2, f.Len())
	got := f.Obstacles()
	assert.Equal(t, "c", got[0].Archetype)
	assert.Equal(t, 0.0, got[0].X+got[0].Width)
	assert.Equal(t, "d", got[1].Archetype)
}

func TestObstacleFieldPruneKeepsOrder(t *testing.T) {
	f := newTestField(t, 1)
	for i, x := range []float64{-50, 10, -60, 20, -70, 30} {
		f.obstacles = append(f.obstacles, Obstacle{X: x, Width: 5, Archetype: string(rune('a' + i))})
	}

	assert.Equal(t, 3, f.prune())

	var order string
	for _, o := range f.Obstacles() {
		order += o.Archetype
	}
	assert.Equal(t, "bdf", order)
}

func TestObstacleFieldCollides(t *testing.T) {
	tests := []struct {
		name     string
		obstacle Obstacle
		want     bool
	}{
		{"overlapping", Obstacle{X: 40, Y: 40, Width: 30, Height: 30}, true},
		{"edge touching", Obstacle{X: 50, Y: 0, Width: 30, Height: 30}, false},
		{"touching bottom edge", Obstacle{X: 0, Y: 50, Width: 30, Height: 30}, false},
		{"contained", Obstacle{X: 10, Y: 10, Width: 5, Height: 5}, true},
	}

	player := core.NewRect(0, 0, 50, 50)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestField(t, 1)
			f.obstacles = append(f.obstacles, tt.obstacle)
			assert.Equal(t, tt.want, f.collides(player))
		})
	}
}

func TestObstacleFieldResetKeepsRandomness(t *testing.T) {
	f := newTestField(t, 5)
	for f.Spawned() < 20 {
		f.tick(testW, testH)
	}
	first := f.Obstacles()

	f.Reset(config.DefaultRunnerConfig().Obstacles)
	assert.Zero(t, f.Len())
	assert.Zero(t, f.Spawned())
	assert.Equal(t, 100, f.Interval())

	for f.Spawned() < 20 {
		f.tick(testW, testH)
	}
	assert.NotEqual(t, first, f.Obstacles())
}
