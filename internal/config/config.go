package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port           int    `mapstructure:"PORT"`
	Env            string `mapstructure:"APP_ENV"` // development | production
	WorkerPoolSize int    `mapstructure:"WORKER_POOL_SIZE"`

	// Persistence
	SnapshotBackend string `mapstructure:"SNAPSHOT_BACKEND"` // redis | sqlite | both
	RedisURL        string `mapstructure:"REDIS_URL"`
	SQLitePath      string `mapstructure:"SQLITE_PATH"`
	SnapshotHistory int    `mapstructure:"SNAPSHOT_HISTORY"`
	Autosave        bool   `mapstructure:"AUTOSAVE"`
	AutosaveMinutes int    `mapstructure:"AUTOSAVE_MINUTES"`

	// SMTP
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`

	// Reports
	ReportStoragePath string `mapstructure:"REPORT_STORAGE_PATH"`
	ReportEmail       string `mapstructure:"REPORT_EMAIL"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("WORKER_POOL_SIZE", 5)
	viper.SetDefault("SNAPSHOT_BACKEND", "sqlite")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("SQLITE_PATH", "delibross.db")
	viper.SetDefault("SNAPSHOT_HISTORY", 30)
	viper.SetDefault("AUTOSAVE", true)
	viper.SetDefault("AUTOSAVE_MINUTES", 5)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("REPORT_STORAGE_PATH", "/tmp/delibross/reports")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
