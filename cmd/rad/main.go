// rad is RAD: The Game, an endless runner for the terminal.
//
// Usage:
//
//	rad play               - Play in this terminal
//	rad serve              - Start SSH server for remote play
//	rad sim                - Run headless autopilot games
//	rad config             - Print the default runner config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Load runner config from a YAML or TOML file
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rad-runner/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rad",
	Short: "RAD: The Game - dodge referrals, collect your pay",
	Long: `RAD: The Game is an endless runner. Jump over the referrals
scrolling in from the right; the longer you last, the higher your score.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sim      - Run headless autopilot games for tuning
  config   - Print the default runner config

Examples:
  rad play
  rad play --config ./runner.toml --watch
  rad serve --ssh :2222
  rad sim --runs 20 --seed 1
  rad config --format toml > runner.toml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to runner config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a timestamped logger at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadRunnerConfig loads the runner config from --config or the search path
// and returns the file it came from, "" for the built-in default.
func loadRunnerConfig(logger *log.Logger) (config.RunnerConfig, string, error) {
	return config.LoadRunner(flagConfig, logger)
}
