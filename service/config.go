package service

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/auchan-scraper/auchan/storage"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Port        string
	DBPath      string

	Export struct {
		Path string
	}

	Seed struct {
		Count int
	}
}

// LoadConfig reads settings from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8000"),
		DBPath:      os.Getenv("DB_PATH"),
	}

	// Database
	if config.DBPath == "" {
		defaultPath, err := storage.DefaultPath()
		if err != nil {
			return nil, err
		}
		config.DBPath = defaultPath
	}

	// Export
	config.Export.Path = getEnv("EXPORT_PATH", "")

	// Seed
	seedCount := getEnv("SEED_COUNT", "25")
	count, err := strconv.Atoi(seedCount)
	if err != nil || count < 0 {
		return nil, fmt.Errorf("invalid SEED_COUNT %q", seedCount)
	}
	config.Seed.Count = count

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
