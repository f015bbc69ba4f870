package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rad-runner/internal/config"
	"github.com/vovakirdan/rad-runner/internal/core"
	"github.com/vovakirdan/rad-runner/internal/runner"
)

var (
	flagSimRuns   int
	flagSimTicks  int
	flagSimWidth  float64
	flagSimHeight float64
	flagSimLead   float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot games",
	Long: `Run games without a screen. An autopilot jumps whenever the next
obstacle is within --lead units. Each run uses the next seed, so a fixed
--seed reproduces the whole table.

Useful for checking that a tuned config is still beatable.

Examples:
  rad sim
  rad sim --runs 50 --seed 1
  rad sim --config ./hard.yaml --lead 24`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 10, "Number of runs")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 20000, "Tick limit per run")
	simCmd.Flags().Float64Var(&flagSimWidth, "width", 800, "Viewport width in units")
	simCmd.Flags().Float64Var(&flagSimHeight, "height", 400, "Viewport height in units")
	simCmd.Flags().Float64Var(&flagSimLead, "lead", runner.DefaultAutopilotLead, "Autopilot jump distance")
}

// simOptions configures a batch of headless runs.
type simOptions struct {
	Runs     int
	MaxTicks int
	Seed     int64
	Viewport runner.FixedViewport
	Lead     float64
	Logger   *log.Logger
}

// simResult is the outcome of one headless run.
type simResult struct {
	Seed     int64
	Stats    runner.Stats
	Survived bool // Reached the tick limit
}

// simulate plays opts.Runs games with consecutive seeds.
func simulate(cfg config.RunnerConfig, opts simOptions) []simResult {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	pilot := runner.Autopilot{Lead: opts.Lead}

	results := make([]simResult, 0, opts.Runs)
	for i := 0; i < opts.Runs; i++ {
		seed := opts.Seed + int64(i)
		clock := runner.NewFrameClock()
		game := runner.New(cfg, runner.Env{
			Renderer: core.NewDrawList(),
			Clock:    clock,
			Viewport: opts.Viewport,
			Logger:   logger,
			Seed:     seed,
		})
		game.Start()

		for t := 0; t < opts.MaxTicks && !game.State().GameOver; t++ {
			pilot.Drive(game)
			clock.Advance()
		}

		results = append(results, simResult{
			Seed:     seed,
			Stats:    game.Stats(),
			Survived: !game.State().GameOver,
		})
	}
	return results
}

var (
	simHeader   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	simSurvived = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	simCrashed  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func runSim(cmd *cobra.Command, _ []string) error {
	if flagSimRuns <= 0 || flagSimTicks <= 0 {
		return fmt.Errorf("--runs and --ticks must be positive")
	}
	logger := newLogger(os.Stderr, "rad-sim")
	cfg, _, err := loadRunnerConfig(logger)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	results := simulate(cfg, simOptions{
		Runs:     flagSimRuns,
		MaxTicks: flagSimTicks,
		Seed:     seed,
		Viewport: runner.FixedViewport{W: flagSimWidth, H: flagSimHeight},
		Lead:     flagSimLead,
		Logger:   logger,
	})

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, simHeader.Render(fmt.Sprintf("%-20s %8s %6s %8s %6s  %s", "SEED", "TICKS", "SCORE", "SPAWNED", "JUMPS", "RESULT")))

	survived := 0
	for _, r := range results {
		result := simCrashed.Render("crashed")
		if r.Survived {
			result = simSurvived.Render("survived")
			survived++
		}
		fmt.Fprintf(out, "%-20d %8d %6d %8d %6d  %s\n",
			r.Seed, r.Stats.Ticks, r.Stats.Score, r.Stats.Spawned, r.Stats.Jumps, result)
	}

	fmt.Fprintf(out, "\n%d/%d runs reached %d ticks\n", survived, len(results), flagSimTicks)
	return nil
}
