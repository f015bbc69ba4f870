package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It matches defaults/runner.yaml.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: Physics{
			Gravity:     0.5,
			JumpImpulse: -10,
		},
		Player: PlayerConfig{
			X:           50,
			Width:       50,
			Height:      50,
			StartOffset: 100,
			Speed:       5,
			Color:       "red",
		},
		Obstacles: ObstacleConfig{
			Speed:           3,
			InitialInterval: 100,
			MinInterval:     50,
			MaxInterval:     150,
			Archetypes: []ArchetypeConfig{
				{Name: "slip", Width: 30, Height: 30, Color: "green"},
				{Name: "stack", Width: 25, Height: 50, Color: "blue"},
				{Name: "binder", Width: 40, Height: 25, Color: "orange"},
				{Name: "crate", Width: 35, Height: 35, Color: "magenta"},
			},
		},
		Score: ScoreConfig{
			Divisor: 100,
		},
		HUD: HUDConfig{
			Title: "RAD: The Game",
			Instructions: []string{
				"Instructions:",
				"1. Click or press Space to jump.",
				"2. Dodge Referrals.",
				"3. Collect your Pay.",
			},
			StartPrompt:   "Click or press Space to Start",
			RestartPrompt: "Click or press Space to Restart",
		},
	}
}

// DefaultYAML returns the embedded default YAML, comments included.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
