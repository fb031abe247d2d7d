package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// HTTP configuration
	HTTPAddr string

	// Discord configuration (optional surface)
	DiscordToken string

	// Chat fallback configuration
	GeminiAPIKey string
	GeminiModel  string

	// Game settings
	StartingBalance int64

	// Environment
	Environment string // "development" or "production"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from a .env file (when present) and
// environment variables
func load() (*Config, error) {
	// Missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	config := &Config{
		HTTPAddr:     os.Getenv("HTTP_ADDR"),
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),

		// Game settings with defaults
		StartingBalance: 100,

		Environment: os.Getenv("ENVIRONMENT"),
	}

	if config.HTTPAddr == "" {
		config.HTTPAddr = ":8080"
	}
	if config.GeminiModel == "" {
		config.GeminiModel = "gemini-2.0-flash"
	}

	if balance := os.Getenv("STARTING_BALANCE"); balance != "" {
		parsedBalance, err := strconv.ParseInt(balance, 10, 64)
		if err != nil || parsedBalance < 0 {
			return nil, fmt.Errorf("invalid STARTING_BALANCE: %q", balance)
		}
		config.StartingBalance = parsedBalance
	}

	if config.Environment == "" {
		config.Environment = "development"
	}

	return config, nil
}
