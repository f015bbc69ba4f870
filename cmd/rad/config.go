package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rad-runner/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the runner config",
	Long: `Print the runner config that would be used, as YAML or TOML.

Without --config this is the first file on the search path
(~/.rad/configs, then ./configs) that loads, or the built-in default.
Files that fail to load are reported and skipped.

Examples:
  rad config
  rad config --format toml > ~/.rad/configs/runner.toml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	format := config.Format(flagFormat)
	if format != config.FormatYAML && format != config.FormatTOML {
		return fmt.Errorf("unknown format %q (want yaml or toml)", flagFormat)
	}

	cfg, path, err := loadRunnerConfig(newLogger(cmd.ErrOrStderr(), "rad"))
	if err != nil {
		return err
	}

	if path != "" {
		cmd.PrintErrf("# from %s\n", path)
	}
	return config.Write(cmd.OutOrStdout(), cfg, format)
}
