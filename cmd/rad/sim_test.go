package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rad-runner/internal/config"
	"github.com/vovakirdan/rad-runner/internal/runner"
)

func TestSimulateDefaultConfigSurvives(t *testing.T) {
	results := simulate(config.DefaultRunnerConfig(), simOptions{
		Runs:     3,
		MaxTicks: 3000,
		Seed:     10,
		Viewport: runner.FixedViewport{W: 800, H: 400},
		Lead:     runner.DefaultAutopilotLead,
	})

	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, int64(10+i), r.Seed)
		assert.True(t, r.Survived, "seed %d", r.Seed)
		assert.Equal(t, 3000, r.Stats.Ticks)
		assert.Equal(t, 30, r.Stats.Score)
	}
}

func TestSimulateWithoutJumpsCrashes(t *testing.T) {
	results := simulate(config.DefaultRunnerConfig(), simOptions{
		Runs:     2,
		MaxTicks: 3000,
		Seed:     1,
		Viewport: runner.FixedViewport{W: 800, H: 400},
		Lead:     -1,
	})

	for _, r := range results {
		assert.False(t, r.Survived)
		assert.Zero(t, r.Stats.Jumps)
		assert.Less(t, r.Stats.Ticks, 3000)
	}
}
