package main

import (
	"fmt"
	"os"

	"cafe-service/database"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	Postgres    database.Config
	RedisAddr   string
}

func LoadConfig() (*Config, error) {
	// Optional .env for local development; must happen before any env read.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8084"),
		Environment: getEnv("APP_ENV", "development"),
		Postgres: database.Config{
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			Name:     os.Getenv("POSTGRES_DB"),
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
			TimeZone: getEnv("POSTGRES_TIMEZONE", "UTC"),
		},
		// Empty means the menu cache is disabled.
		RedisAddr: os.Getenv("REDIS_ADDR"),
	}

	if cfg.Postgres.User == "" || cfg.Postgres.Password == "" || cfg.Postgres.Name == "" {
		return nil, fmt.Errorf("database config incomplete")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
