package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rad-runner/internal/config"
	"github.com/vovakirdan/rad-runner/internal/core"
	"github.com/vovakirdan/rad-runner/internal/platform/tui"
)

var (
	flagBell    bool
	flagWatch   bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in the current terminal.

Controls:
  Space/Up/W/Enter/Click  - Start, jump, restart
  Ctrl+S                  - Save a text screenshot to ~/.rad/screenshots
  Q/Ctrl+C                - Quit

With --watch the config file is reloaded whenever it changes. The new
tuning applies to the next run.

Examples:
  rad play
  rad play --bell
  rad play --config ./runner.yaml --watch
  rad play --log-file rad.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell on collisions")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the screen is busy)")
}

func runPlay(_ *cobra.Command, _ []string) {
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", openErr)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "rad")

	runnerCfg, cfgPath, err := loadRunnerConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Runner: runnerCfg,
		Bell:   flagBell,
		Logger: logger,
	}

	if flagWatch {
		if cfgPath == "" {
			fmt.Fprintln(os.Stderr, "Error: --watch needs a config file; none loaded")
			os.Exit(1)
		}
		watcher, watchErr := config.Watch(cfgPath)
		if watchErr != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot watch %s: %v\n", cfgPath, watchErr)
			os.Exit(1)
		}
		defer watcher.Close()
		opts.Watcher = watcher
		logger.Info("watching config", "path", watcher.Path())
	}

	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
