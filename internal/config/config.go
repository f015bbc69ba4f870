// Package config provides YAML/TOML-based runner configuration loading,
// validation and hot reload.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/rad-runner/internal/core"
)

// RunnerConfig contains all tuning for the runner.
type RunnerConfig struct {
	Physics   Physics        `yaml:"physics" toml:"physics"`
	Player    PlayerConfig   `yaml:"player" toml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles" toml:"obstacles"`
	Score     ScoreConfig    `yaml:"score" toml:"score"`
	HUD       HUDConfig      `yaml:"hud" toml:"hud"`
}

// Physics defines player physics constants.
type Physics struct {
	Gravity     float64 `yaml:"gravity" toml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse" toml:"jump_impulse"`
}

// PlayerConfig defines the player rectangle.
type PlayerConfig struct {
	X           float64 `yaml:"x" toml:"x"`
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	StartOffset float64 `yaml:"start_offset" toml:"start_offset"`
	Speed       float64 `yaml:"speed" toml:"speed"`
	Color       string  `yaml:"color" toml:"color"`
}

// ObstacleConfig defines obstacle movement, spawn timing and archetypes.
type ObstacleConfig struct {
	Speed           float64           `yaml:"speed" toml:"speed"`
	InitialInterval int               `yaml:"initial_interval" toml:"initial_interval"`
	MinInterval     int               `yaml:"min_interval" toml:"min_interval"`
	MaxInterval     int               `yaml:"max_interval" toml:"max_interval"`
	Archetypes      []ArchetypeConfig `yaml:"archetypes" toml:"archetypes"`
}

// ArchetypeConfig is one obstacle size/color template.
type ArchetypeConfig struct {
	Name   string  `yaml:"name" toml:"name"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Color  string  `yaml:"color" toml:"color"`
}

// ScoreConfig defines how the tick counter maps to the displayed score.
type ScoreConfig struct {
	Divisor int `yaml:"divisor" toml:"divisor"`
}

// HUDConfig holds the texts shown on the instructions and game over screens.
type HUDConfig struct {
	Title         string   `yaml:"title" toml:"title"`
	Instructions  []string `yaml:"instructions" toml:"instructions"`
	StartPrompt   string   `yaml:"start_prompt" toml:"start_prompt"`
	RestartPrompt string   `yaml:"restart_prompt" toml:"restart_prompt"`
}

// Validate reports every problem found in the config.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpImpulse < 0, "physics.jump_impulse must be negative, got %v", c.Physics.JumpImpulse)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	check(c.Obstacles.Speed > 0, "obstacles.speed must be positive, got %v", c.Obstacles.Speed)
	check(c.Obstacles.InitialInterval > 0, "obstacles.initial_interval must be positive, got %d", c.Obstacles.InitialInterval)
	check(c.Obstacles.MinInterval > 0, "obstacles.min_interval must be positive, got %d", c.Obstacles.MinInterval)
	check(c.Obstacles.MinInterval <= c.Obstacles.MaxInterval,
		"obstacles.min_interval (%d) exceeds max_interval (%d)", c.Obstacles.MinInterval, c.Obstacles.MaxInterval)
	check(len(c.Obstacles.Archetypes) > 0, "obstacles.archetypes must not be empty")
	check(c.Score.Divisor > 0, "score.divisor must be positive, got %d", c.Score.Divisor)

	if _, err := core.ParseColor(c.Player.Color); err != nil {
		errs = append(errs, fmt.Errorf("player.color: %w", err))
	}
	for i, a := range c.Obstacles.Archetypes {
		check(a.Width > 0 && a.Height > 0, "obstacles.archetypes[%d] (%s) size must be positive", i, a.Name)
		if _, err := core.ParseColor(a.Color); err != nil {
			errs = append(errs, fmt.Errorf("obstacles.archetypes[%d].color: %w", i, err))
		}
	}

	return errors.Join(errs...)
}
