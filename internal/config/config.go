package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	BotUsername string
	Database    DatabaseConfig

	// Paths to the bundled line-oriented resources
	ChannelsFile string
	BanListFile  string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:     os.Getenv("BOT_TOKEN"),
		BotUsername:  os.Getenv("BOT_USERNAME"),
		ChannelsFile: getEnv("CHANNELS_FILE", "resources/channels.csv"),
		BanListFile:  getEnv("BANLIST_FILE", "resources/banlist.csv"),
		Database: DatabaseConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "askbot"),
			User:     getEnv("DB_USER", "askbot"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.BotUsername == "" {
		return nil, fmt.Errorf("BOT_USERNAME is required")
	}
	if cfg.Database.Host == "" {
		return nil, fmt.Errorf("DB_HOST is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
