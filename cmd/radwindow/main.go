// radwindow runs RAD: The Game in a desktop window (or a browser tab when
// built with GOOS=js GOARCH=wasm).
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rad-runner/internal/config"
	"github.com/vovakirdan/rad-runner/internal/platform/window"
)

var (
	flagWidth    int
	flagHeight   int
	flagSeed     int64
	flagConfig   string
	flagMute     bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "radwindow",
	Short: "Play RAD: The Game in a window",
	Long: `Open a resizable window and play. Click, tap or press Space to
start, jump and restart. Q or Esc closes the window.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntVar(&flagWidth, "width", 800, "Initial window width")
	rootCmd.Flags().IntVar(&flagHeight, "height", 400, "Initial window height")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to runner config (YAML or TOML)")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "radwindow",
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}

	runnerCfg, _, err := config.LoadRunner(flagConfig, logger)
	if err != nil {
		return err
	}

	opts := window.Options{
		Width:  flagWidth,
		Height: flagHeight,
		Seed:   flagSeed,
		Runner: runnerCfg,
		Logger: logger,
	}
	if !flagMute {
		opts.Sound = window.NewAudio(audio.NewContext(window.SampleRate))
	}

	ebiten.SetWindowSize(flagWidth, flagHeight)
	ebiten.SetWindowTitle(runnerCfg.HUD.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(window.New(opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("radwindow: %w", err)
	}
	return nil
}
