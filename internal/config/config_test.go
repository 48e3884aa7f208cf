package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptyEnvFile keeps tests from picking up a stray ./.env.
func emptyEnvFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "empty.env")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	return path
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig(emptyEnvFile(t))

	assert.Equal(t, int32(8188), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 2, cfg.Global.ShutdownTimeoutInSeconds)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.False(t, cfg.Database.LogSQL)
	assert.True(t, cfg.Seed.Enabled)
	assert.Equal(t, DefaultExportDir, cfg.Export.Dir)
	assert.False(t, cfg.Export.Enabled)
	assert.Equal(t, "0 * * * *", cfg.Export.Schedule)
	assert.True(t, cfg.Tasks.Enabled)
	assert.Equal(t, 1, cfg.Tasks.Workers)
	assert.Equal(t, 15*time.Minute, cfg.Tasks.ReleaseAfter)
	assert.Equal(t, time.Hour, cfg.Tasks.CleanupInterval)
	assert.True(t, cfg.Metrics.Enabled)

	assert.NoError(t, cfg.Validate())
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_PATH", "/tmp/quotes.db")
	t.Setenv("DATABASE_LOG_SQL", "true")
	t.Setenv("SEED_ENABLED", "false")
	t.Setenv("EXPORT_ENABLED", "true")
	t.Setenv("EXPORT_SCHEDULE", "*/15 * * * *")
	t.Setenv("TASK_RELEASE_AFTER", "30s")

	cfg := NewConfig(emptyEnvFile(t))

	assert.Equal(t, int32(9000), cfg.HTTP.Port)
	assert.Equal(t, "/tmp/quotes.db", cfg.Database.Path)
	assert.True(t, cfg.Database.LogSQL)
	assert.False(t, cfg.Seed.Enabled)
	assert.True(t, cfg.Export.Enabled)
	assert.Equal(t, "*/15 * * * *", cfg.Export.Schedule)
	assert.Equal(t, 30*time.Second, cfg.Tasks.ReleaseAfter)
}

func TestNewConfig_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "EXPORT_DIR=/srv/quotes\nHOST=127.0.0.1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Cleanup(func() {
		os.Unsetenv("EXPORT_DIR")
		os.Unsetenv("HOST")
	})

	cfg := NewConfig(path)

	assert.Equal(t, "/srv/quotes", cfg.Export.Dir)
	assert.Equal(t, "127.0.0.1", cfg.HTTP.Host)
}

func TestNewConfig_EnvironmentWinsOverEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DATABASE_PATH=/from/file.db\n"), 0644))
	t.Setenv("DATABASE_PATH", "/from/env.db")

	cfg := NewConfig(path)

	assert.Equal(t, "/from/env.db", cfg.Database.Path)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			HTTP:     HTTP{Port: 8188},
			Database: Database{Path: "./quotebook.db"},
			Export:   Export{Dir: "./export"},
			Tasks:    Tasks{Enabled: true, Workers: 1},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"zero port", func(c *Config) { c.HTTP.Port = 0 }, "PORT"},
		{"port too large", func(c *Config) { c.HTTP.Port = 70000 }, "PORT"},
		{"empty database path", func(c *Config) { c.Database.Path = "" }, "DATABASE_PATH"},
		{"export without dir", func(c *Config) { c.Export.Enabled = true; c.Export.Dir = "" }, "EXPORT_DIR"},
		{"no workers", func(c *Config) { c.Tasks.Workers = 0 }, "TASK_WORKERS"},
		{"no workers with tasks disabled", func(c *Config) { c.Tasks.Enabled = false; c.Tasks.Workers = 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
