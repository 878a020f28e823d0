package platform_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/fitbook/internal/platform"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("YAML", func(t *testing.T) {
		path := filepath.Join(dir, "fitbook.yaml")
		writeFile(t, path, "data_file: clients.yaml\nread_only: true\nlog_level: debug\n")

		cfg, err := platform.LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, "clients.yaml", cfg.DataFile)
		require.NotNil(t, cfg.ReadOnly)
		assert.True(t, *cfg.ReadOnly)
		assert.Nil(t, cfg.Watch)
		assert.Equal(t, path, cfg.Source)
	})

	t.Run("TOML", func(t *testing.T) {
		path := filepath.Join(dir, "fitbook.toml")
		writeFile(t, path, "data_file = \"clients.csv\"\nwatch = true\nhistory_file = \"/tmp/h\"\n")

		cfg, err := platform.LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, "clients.csv", cfg.DataFile)
		require.NotNil(t, cfg.Watch)
		assert.True(t, *cfg.Watch)
		assert.Equal(t, "/tmp/h", cfg.HistoryFile)
	})

	t.Run("Unknown YAML Field", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		writeFile(t, path, "datafile: oops\n")
		_, err := platform.LoadConfigFile(path)
		assert.Error(t, err)
	})

	t.Run("Unsupported Extension", func(t *testing.T) {
		_, err := platform.LoadConfigFile(filepath.Join(dir, "fitbook.ini"))
		assert.Error(t, err)
	})
}

func TestLoadConfig_EnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "fitbook.yaml"), "data_file: from-file.json\nlog_level: warn\n")
	writeFile(t, filepath.Join(dir, ".env"), "FITBOOK_LOG_LEVEL=error\nFITBOOK_READ_ONLY=true\n")

	t.Setenv(platform.EnvDataFile, "from-env.json")
	// godotenv never overrides variables that are already set.
	t.Setenv(platform.EnvReadOnly, "false")
	t.Setenv(platform.EnvLogLevel, "")
	t.Setenv(platform.EnvWatch, "")
	os.Unsetenv(platform.EnvLogLevel)

	cfg, err := platform.LoadConfig([]string{dir}, filepath.Join(dir, ".env"), filepath.Join(dir, "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "from-env.json", cfg.DataFile)
	assert.Equal(t, "error", cfg.LogLevel, ".env value applies when the variable is unset")
	require.NotNil(t, cfg.ReadOnly)
	assert.False(t, *cfg.ReadOnly)
}

func TestApplyEnvOverrides_InvalidBool(t *testing.T) {
	t.Setenv(platform.EnvWatch, "sometimes")
	cfg := &platform.Config{}
	assert.Error(t, cfg.ApplyEnvOverrides())
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := platform.ParseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
