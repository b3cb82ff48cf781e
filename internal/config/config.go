package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Addr          string
	SessionSecret string
	SeedFile      string
}

// New loads configuration from environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Addr:          os.Getenv("PARLOR_ADDR"),
		SessionSecret: os.Getenv("PARLOR_SESSION_SECRET"),
		SeedFile:      os.Getenv("PARLOR_SEED_FILE"),
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.SessionSecret == "" {
		log.Fatal("Required environment variable PARLOR_SESSION_SECRET is not set.")
	}

	return cfg
}
