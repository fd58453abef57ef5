package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ProjectID string
	LogLevel  string
	Port      string
}

func New() *Config {
	// .env is optional; real deployments inject env vars directly
	_ = godotenv.Load()

	return &Config{
		ProjectID: os.Getenv("PROJECTID"),
		LogLevel:  os.Getenv("LOGLEVEL"),
		Port:      getEnv("PORT", "8080"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
