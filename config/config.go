package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries everything main needs to wire the process. Values come from
// the environment, with a .env file loaded first when present.
type Config struct {
	Port            string
	BaseURL         string
	StripeSecretKey string
	AllowedOrigins  []string
	SeedSampleData  bool
	LogLevel        string
}

func Load() Config {
	// Best effort: a missing .env just means the environment is already set.
	_ = godotenv.Load()

	cfg := Config{
		Port:            getenv("PORT", "5000"),
		BaseURL:         getenv("BASE_URL", "http://localhost:5000"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		SeedSampleData:  os.Getenv("SEED_SAMPLE_DATA") == "true",
		LogLevel:        getenv("LOG_LEVEL", "info"),
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
