package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultDBPath = "./dev.db"
	defaultPort   = "8080"
	defaultEnv    = "dev"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	DBPath    string
	Port      string
	Env       string
	RatesPath string
}

// IsDev reports whether the application runs in the development environment.
func (c Config) IsDev() bool {
	return c.Env == "" || c.Env == defaultEnv
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// A missing .env is fine; godotenv never overwrites variables already set.
	_ = godotenv.Load()

	cfg := Config{
		DBPath:    os.Getenv("DB_PATH"),
		Port:      os.Getenv("PORT"),
		Env:       os.Getenv("APP_ENV"),
		RatesPath: os.Getenv("RATES_PATH"),
	}

	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}

	if cfg.RatesPath == "" {
		log.Print("warning: RATES_PATH is not set, using default statutory rates")
	}

	return cfg
}
