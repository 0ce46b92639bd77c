package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	Environment string
	// LegacyOpenRoutes reproduces the original deployment's ungated
	// mutation endpoints (role promotion, class moderation, booking
	// deletion). Off by default; the default wiring requires admin or
	// owner authority on those routes.
	LegacyOpenRoutes bool
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:             os.Getenv("PORT"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecret:        os.Getenv("ACCESS_TOKEN_SECRET"),
		Environment:      os.Getenv("ENV"),
		LegacyOpenRoutes: os.Getenv("LEGACY_OPEN_ROUTES") == "true",
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET is required but not set")
	}

	return cfg, nil
}
