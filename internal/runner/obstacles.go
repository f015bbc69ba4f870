package runner

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/rad-runner/internal/config"
	"github.com/vovakirdan/rad-runner/internal/core"
)

// Archetype is one obstacle size/color template.
type Archetype struct {
	Name          string
	Width, Height float64
	Color         core.Color
}

// Obstacle is a ground obstacle the player must jump over.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
	Archetype     string
	Color         core.Color
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// expired reports whether the obstacle has fully left the playfield.
func (o Obstacle) expired() bool {
	return o.X+o.Width < 0
}

// ObstacleField handles spawning, movement, collision and removal of obstacles.
type ObstacleField struct {
	obstacles   []Obstacle
	palette     []Archetype
	rng         *rand.Rand
	speed       float64
	timer       int // Ticks since the last spawn
	interval    int // Ticks between the last spawn and the next one
	minInterval int
	maxInterval int
	spawned     int
}

// NewObstacleField creates an empty field drawing randomness from rng.
func NewObstacleField(cfg config.ObstacleConfig, rng *rand.Rand) *ObstacleField {
	f := &ObstacleField{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
	}
	f.Reset(cfg)
	return f
}

// Reset clears all obstacles and applies cfg. The RNG keeps its state so
// consecutive runs differ.
func (f *ObstacleField) Reset(cfg config.ObstacleConfig) {
	f.obstacles = f.obstacles[:0]
	f.palette = f.palette[:0]
	for _, a := range cfg.Archetypes {
		color, _ := core.ParseColor(a.Color)
		f.palette = append(f.palette, Archetype{Name: a.Name, Width: a.Width, Height: a.Height, Color: color})
	}
	f.speed = cfg.Speed
	f.timer = 0
	f.interval = cfg.InitialInterval
	f.minInterval = cfg.MinInterval
	f.maxInterval = cfg.MaxInterval
	f.spawned = 0
}

// tick advances the spawn timer and spawns an obstacle at the right edge
// when the interval has elapsed. Returns true if an obstacle was spawned.
func (f *ObstacleField) tick(viewportW, viewportH float64) bool {
	f.timer++
	if f.timer < f.interval || len(f.palette) == 0 {
		return false
	}

	a := f.palette[f.rng.Intn(len(f.palette))]
	f.obstacles = append(f.obstacles, Obstacle{
		X:         viewportW,
		Y:         viewportH - a.Height, // Rests on the ground line
		Width:     a.Width,
		Height:    a.Height,
		Archetype: a.Name,
		Color:     a.Color,
	})
	f.spawned++

	f.timer = 0
	f.interval = f.rollInterval()
	return true
}

// rollInterval draws the next spawn interval uniformly from [min, max].
func (f *ObstacleField) rollInterval() int {
	if f.maxInterval <= f.minInterval {
		return f.minInterval
	}
	return f.minInterval + f.rng.Intn(f.maxInterval-f.minInterval+1)
}

// advance moves every obstacle left by the field speed.
func (f *ObstacleField) advance() {
	for i := range f.obstacles {
		f.obstacles[i].X -= f.speed
	}
}

// collides tests r against the obstacles in spawn order.
func (f *ObstacleField) collides(r core.Rect) bool {
	for _, o := range f.obstacles {
		if r.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}

// prune removes obstacles that have moved off the left side.
// It filters into the same backing array, so survivors keep their order
// and every element is examined exactly once.
func (f *ObstacleField) prune() int {
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if !o.expired() {
			kept = append(kept, o)
		}
	}
	removed := len(f.obstacles) - len(kept)
	f.obstacles = kept
	return removed
}

// Obstacles returns a copy of the live obstacles in spawn order.
func (f *ObstacleField) Obstacles() []Obstacle {
	return slices.Clone(f.obstacles)
}

// Len returns the number of live obstacles.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}

// Interval returns the current spawn interval in ticks.
func (f *ObstacleField) Interval() int {
	return f.interval
}

// Spawned returns the number of obstacles spawned since the last Reset.
func (f *ObstacleField) Spawned() int {
	return f.spawned
}
