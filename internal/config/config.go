// Package config loads taskshell settings from defaults, an optional YAML
// config file, .env files and TASKSHELL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"taskshell/internal/logger"
)

// EnvPrefix is the prefix of every environment variable read by taskshell.
const EnvPrefix = "TASKSHELL"

// Configuration keys.
const (
	KeyDataBackend   = "data.backend"
	KeyDataPath      = "data.path"
	KeyMaxStates     = "history.max_states"
	KeyMaxDistance   = "suggest.max_distance"
	KeyExitAutosave  = "exit.autosave"
	KeyOutputStyle   = "output.style"
	defaultDirName   = ".taskshell"
	defaultFileStem  = "schedule"
	configFileName   = "config"
	configFileFormat = "yaml"
)

// Output styles.
const (
	StyleAuto  = "auto"
	StylePlain = "plain"
	StyleColor = "color"
)

// Config is the typed view of all settings.
type Config struct {
	Data    DataConfig    `mapstructure:"data"`
	History HistoryConfig `mapstructure:"history"`
	Suggest SuggestConfig `mapstructure:"suggest"`
	Exit    ExitConfig    `mapstructure:"exit"`
	Output  OutputConfig  `mapstructure:"output"`
}

// DataConfig selects the storage backend and file.
type DataConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

// HistoryConfig bounds the undo stack.
type HistoryConfig struct {
	MaxStates int `mapstructure:"max_states"`
}

// SuggestConfig controls "did you mean" suggestions.
type SuggestConfig struct {
	MaxDistance int `mapstructure:"max_distance"`
}

// ExitConfig controls what happens on exit.
type ExitConfig struct {
	Autosave bool `mapstructure:"autosave"`
}

// OutputConfig controls feedback rendering.
type OutputConfig struct {
	Style string `mapstructure:"style"`
}

// Options tune Load.
type Options struct {
	// ConfigFile is an explicit config file. When empty, config.yaml in the
	// taskshell directory is read if present.
	ConfigFile string
	// EnvFiles are .env files to load. When nil, the taskshell directory's
	// .env and the working directory's .env are tried.
	EnvFiles []string
	// TestMode skips the user's home directory and default .env files.
	TestMode bool
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDataBackend, "yaml")
	v.SetDefault(KeyDataPath, "")
	v.SetDefault(KeyMaxStates, 100)
	v.SetDefault(KeyMaxDistance, 2)
	v.SetDefault(KeyExitAutosave, true)
	v.SetDefault(KeyOutputStyle, StyleAuto)
}

// Load reads the configuration into v and returns the validated result.
// Flags bound to v before the call take precedence over every other source.
func Load(v *viper.Viper, opts Options) (*Config, error) {
	envFiles := opts.EnvFiles
	if envFiles == nil && !opts.TestMode {
		envFiles = defaultEnvFiles()
	}
	for _, path := range envFiles {
		if err := loadDotEnv(path); err != nil {
			return nil, err
		}
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, opts); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}
	cfg.Data.Backend = strings.ToLower(strings.TrimSpace(cfg.Data.Backend))
	cfg.Output.Style = strings.ToLower(strings.TrimSpace(cfg.Output.Style))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Data.Path == "" && !opts.TestMode {
		if dir, err := Dir(); err == nil {
			cfg.Data.Path = DefaultDataPath(dir, cfg.Data.Backend)
		}
	}

	logger.Debug("Configuration loaded", "backend", cfg.Data.Backend, "path", cfg.Data.Path,
		"max_states", cfg.History.MaxStates, "max_distance", cfg.Suggest.MaxDistance)
	return &cfg, nil
}

// Validate checks value ranges and enumerations. Errors name the offending key.
func (c *Config) Validate() error {
	switch c.Data.Backend {
	case "yaml", "sqlite":
	default:
		return fmt.Errorf("%s: unsupported backend %q (use yaml or sqlite)", KeyDataBackend, c.Data.Backend)
	}
	if c.History.MaxStates < 1 {
		return fmt.Errorf("%s: must be at least 1, got %d", KeyMaxStates, c.History.MaxStates)
	}
	if c.Suggest.MaxDistance < 0 {
		return fmt.Errorf("%s: cannot be negative, got %d", KeyMaxDistance, c.Suggest.MaxDistance)
	}
	switch c.Output.Style {
	case StyleAuto, StylePlain, StyleColor:
	default:
		return fmt.Errorf("%s: unsupported style %q (use auto, plain or color)", KeyOutputStyle, c.Output.Style)
	}
	return nil
}

// Dir returns the per-user taskshell directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, defaultDirName), nil
}

// DefaultDataPath is the schedule file used when data.path is not set.
func DefaultDataPath(dir, backend string) string {
	ext := ".yaml"
	if backend == "sqlite" {
		ext = ".db"
	}
	return filepath.Join(dir, defaultFileStem+ext)
}

func readConfigFile(v *viper.Viper, opts Options) error {
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", opts.ConfigFile, err)
		}
		return nil
	}
	if opts.TestMode {
		return nil
	}

	dir, err := Dir()
	if err != nil {
		return nil // no home directory, nothing to read
	}
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileFormat)
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	return nil
}

func defaultEnvFiles() []string {
	var files []string
	if dir, err := Dir(); err == nil {
		files = append(files, filepath.Join(dir, ".env"))
	}
	if wd, err := os.Getwd(); err == nil {
		files = append(files, filepath.Join(wd, ".env"))
	}
	return files
}

// loadDotEnv exports the TASKSHELL_* entries of a .env file that are not
// already set in the environment. A missing file is not an error.
func loadDotEnv(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read .env file %s: %w", path, err)
	}

	envMap, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return fmt.Errorf("failed to parse .env file %s: %w", path, err)
	}
	for key, value := range envMap {
		if !strings.HasPrefix(key, EnvPrefix+"_") || os.Getenv(key) != "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("export %s: %w", key, err)
		}
	}
	return nil
}
