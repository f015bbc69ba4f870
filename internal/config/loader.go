package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Format is a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// configNames are the file names probed in each search directory, in order.
var configNames = []string{"runner.yaml", "runner.yml", "runner.toml"}

// FormatOf picks the encoding from a file extension. Unknown extensions are YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Parse decodes and validates config data in the given format.
func Parse(data []byte, format Format) (RunnerConfig, error) {
	var cfg RunnerConfig
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return cfg, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile loads a runner config from an explicit path.
func LoadFile(path string) (RunnerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunnerConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data, FormatOf(path))
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadRunner loads the runner configuration and returns the path it was
// read from, or "" when the embedded default applies.
// Search order: customPath -> ~/.rad/configs/runner.* -> ./configs/runner.*
// An explicit customPath must load. Files on the search path that exist but
// fail to load are logged at warn level and skipped. A nil logger discards.
func LoadRunner(customPath string, logger *log.Logger) (RunnerConfig, string, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, "", err
		}
		return cfg, customPath, nil
	}

	for _, dir := range searchDirs() {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			cfg, err := LoadFile(path)
			if err == nil {
				return cfg, path, nil
			}
			if !errors.Is(err, fs.ErrNotExist) {
				logger.Warn("skipping config file", "path", path, "err", err)
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRunnerYAML, FormatYAML)
	if err != nil {
		return DefaultRunnerConfig(), "", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "", nil
}

// Write encodes cfg to w in the given format.
func Write(w io.Writer, cfg RunnerConfig, format Format) error {
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("config: cannot encode toml: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("config: cannot encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("config: unknown format %q", format)
	}
}

// searchDirs lists the implicit config directories in priority order.
func searchDirs() []string {
	var dirs []string
	if userDir := userConfigDir(); userDir != "" {
		dirs = append(dirs, userDir)
	}
	return append(dirs, "configs")
}

// userConfigDir returns ~/.rad/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rad", "configs")
}
