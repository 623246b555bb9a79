package config

import (
	"fmt"
	"os"

	"ge-flipper/internal/flip"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DatabaseURL string
	Port        string
	Environment string

	// Base URL of the price API (RuneScape wiki real-time prices).
	PriceAPIURL string
	// User-Agent sent to the price API; the wiki asks for a descriptive one.
	PriceUserAgent string

	// Strategy settings, overridable per refresh through the HTTP API.
	Flip flip.Settings
}

func Load() (*Config, error) {
	var settings flip.Settings
	if err := envconfig.Process("", &settings); err != nil {
		return nil, fmt.Errorf("failed to load flip settings: %w", err)
	}

	return &Config{
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		PriceAPIURL:    getEnv("PRICE_API_URL", "https://prices.runescape.wiki/api/v1/osrs"),
		PriceUserAgent: getEnv("PRICE_USER_AGENT", "ge-flipper/1.0"),
		Flip:           settings,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
