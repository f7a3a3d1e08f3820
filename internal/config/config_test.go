package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TASKSHELL_DATA_BACKEND", "TASKSHELL_DATA_PATH", "TASKSHELL_HISTORY_MAX_STATES",
		"TASKSHELL_SUGGEST_MAX_DISTANCE", "TASKSHELL_EXIT_AUTOSAVE", "TASKSHELL_OUTPUT_STYLE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(viper.New(), Options{TestMode: true})
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.Data.Backend)
	assert.Equal(t, "", cfg.Data.Path)
	assert.Equal(t, 100, cfg.History.MaxStates)
	assert.Equal(t, 2, cfg.Suggest.MaxDistance)
	assert.True(t, cfg.Exit.Autosave)
	assert.Equal(t, StyleAuto, cfg.Output.Style)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("TASKSHELL_HISTORY_MAX_STATES", "5")
	t.Setenv("TASKSHELL_DATA_BACKEND", "SQLite")
	t.Setenv("TASKSHELL_EXIT_AUTOSAVE", "false")

	cfg, err := Load(viper.New(), Options{TestMode: true})
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.History.MaxStates)
	assert.Equal(t, "sqlite", cfg.Data.Backend)
	assert.False(t, cfg.Exit.Autosave)
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `data:
  backend: sqlite
  path: /tmp/tasks.db
suggest:
  max_distance: 1
output:
  style: plain
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(viper.New(), Options{ConfigFile: path, TestMode: true})
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Data.Backend)
	assert.Equal(t, "/tmp/tasks.db", cfg.Data.Path)
	assert.Equal(t, 1, cfg.Suggest.MaxDistance)
	assert.Equal(t, StylePlain, cfg.Output.Style)
	assert.Equal(t, 100, cfg.History.MaxStates)
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(viper.New(), Options{ConfigFile: filepath.Join(t.TempDir(), "none.yaml"), TestMode: true})
	assert.ErrorContains(t, err, "read config file")
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "TASKSHELL_SUGGEST_MAX_DISTANCE=3\nUNRELATED_KEY=ignored\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0600))

	cfg, err := Load(viper.New(), Options{EnvFiles: []string{envFile, filepath.Join(t.TempDir(), "missing.env")}, TestMode: true})
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Suggest.MaxDistance)
	assert.Equal(t, "", os.Getenv("UNRELATED_KEY"))
}

func TestLoad_FlagTakesPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("TASKSHELL_DATA_PATH", "/from/env.yaml")

	v := viper.New()
	v.Set(KeyDataPath, "/from/flag.yaml")

	cfg, err := Load(v, Options{TestMode: true})
	require.NoError(t, err)
	assert.Equal(t, "/from/flag.yaml", cfg.Data.Path)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Data:    DataConfig{Backend: "yaml"},
		History: HistoryConfig{MaxStates: 10},
		Suggest: SuggestConfig{MaxDistance: 2},
		Output:  OutputConfig{Style: StyleAuto},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		key    string
	}{
		{"bad backend", func(c *Config) { c.Data.Backend = "csv" }, KeyDataBackend},
		{"zero states", func(c *Config) { c.History.MaxStates = 0 }, KeyMaxStates},
		{"negative distance", func(c *Config) { c.Suggest.MaxDistance = -1 }, KeyMaxDistance},
		{"bad style", func(c *Config) { c.Output.Style = "neon" }, KeyOutputStyle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestDefaultDataPath(t *testing.T) {
	assert.Equal(t, filepath.Join("d", "schedule.yaml"), DefaultDataPath("d", "yaml"))
	assert.Equal(t, filepath.Join("d", "schedule.db"), DefaultDataPath("d", "sqlite"))
}
