package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the ledger library's platform configuration.
type Config struct {
	DatabaseURL   string
	IsProduction  bool
	RunMigrations bool
	LogLevel      string
}

// LoadConfig loads configuration from environment variables and a .env file if
// present. Environment variables override .env values.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("LOG_LEVEL", "info")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:   viper.GetString("PGSQL_URL"),
		IsProduction:  viper.GetBool("IS_PRODUCTION"),
		RunMigrations: viper.GetBool("RUN_MIGRATIONS"),
		LogLevel:      viper.GetString("LOG_LEVEL"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	return cfg, nil
}
