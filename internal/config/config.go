package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Seed
		Export
		Tasks
		Metrics
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path   string
		LogSQL bool // Log every SQL statement through gorm
	}
	Seed struct {
		Enabled bool // Insert starter quotes into an empty store on startup
	}
	Export struct {
		Dir      string // Directory for markdown exports
		Enabled  bool   // Run the export on a schedule
		Schedule string // Cron format: "0 * * * *" = hourly
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration // Stuck tasks go back to the queue after this
		CleanupInterval time.Duration
	}
	Metrics struct {
		Enabled bool // Expose /metrics
	}
)

// NewConfig builds the configuration from environment variables.
// Values from the given .env files (or ./.env when none are given) are
// loaded first; variables already set in the environment win.
func NewConfig(envFiles ...string) *Config {
	loadEnvFiles(envFiles)

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_log_sql", false)
	v.SetDefault("seed_enabled", true)
	v.SetDefault("export_dir", DefaultExportDir)
	v.SetDefault("export_enabled", false)
	v.SetDefault("export_schedule", "0 * * * *") // Hourly at :00
	v.SetDefault("metrics_enabled", true)

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 1)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path:   v.GetString("DATABASE_PATH"),
			LogSQL: v.GetBool("DATABASE_LOG_SQL"),
		},
		Seed: Seed{
			Enabled: v.GetBool("SEED_ENABLED"),
		},
		Export: Export{
			Dir:      v.GetString("EXPORT_DIR"),
			Enabled:  v.GetBool("EXPORT_ENABLED"),
			Schedule: v.GetString("EXPORT_SCHEDULE"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
		Metrics: Metrics{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
	}
}

// Validate reports configuration that cannot work at startup.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.HTTP.Port)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("DATABASE_PATH must not be empty")
	}
	if c.Export.Enabled && c.Export.Dir == "" {
		return fmt.Errorf("EXPORT_DIR must be set when EXPORT_ENABLED is true")
	}
	if c.Tasks.Enabled && c.Tasks.Workers < 1 {
		return fmt.Errorf("TASK_WORKERS must be at least 1, got %d", c.Tasks.Workers)
	}
	return nil
}

func loadEnvFiles(files []string) {
	if len(files) == 0 {
		// A missing ./.env is normal.
		_ = godotenv.Load()
		return
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			log.Printf("Warning: failed to load env file %s: %v", file, err)
		}
	}
}
