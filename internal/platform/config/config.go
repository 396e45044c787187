package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DBPath           string
	MigrationsPath   string
	Port             string
	IsProduction     bool
	RateLimit        string // ulule/limiter formatted rate, e.g. "300-M"
	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("DB_PATH", "./data/carro_comidas.db")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:5173")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DBPath = viper.GetString("DB_PATH")
	if cfg.DBPath == "" {
		cfg.DBPath = "./data/carro_comidas.db"
		log.Printf("Warning: DB_PATH environment variable not set. Defaulting to %s\n", cfg.DBPath)
	}

	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "file://migrations"
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = "300-M"
	}

	origins := viper.GetString("CORS_ALLOW_ORIGINS")
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, trimmed)
		}
	}

	return cfg, nil
}
